package services

import (
	"context"
	"time"

	"pandas-platform/backend/models"
	"pandas-platform/backend/store"
	"pandas-platform/backend/utils"

	"github.com/rs/zerolog"
)

type UpsertProgressInput struct {
	ModuleID  string `json:"moduleId" validate:"required"`
	TopicID   string `json:"topicId" validate:"required"`
	Completed bool   `json:"completed"`
	TimeSpent int    `json:"timeSpent" validate:"min=0"`
	Notes     string `json:"notes"`
}

type ProgressService struct {
	progress store.ProgressStore
	log      zerolog.Logger
	now      func() time.Time
}

func NewProgressService(progress store.ProgressStore, log zerolog.Logger) *ProgressService {
	return &ProgressService{
		progress: progress,
		log:      log.With().Str("component", "progress").Logger(),
		now:      time.Now,
	}
}

// UpsertProgress records the latest state of one topic for the user. The
// completion date is set when completed is true and cleared otherwise, so
// un-completing a topic discards its earlier completion date.
func (s *ProgressService) UpsertProgress(ctx context.Context, userID uint, in UpsertProgressInput) (*models.Progress, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	row := &models.Progress{
		UserID:    userID,
		ModuleID:  in.ModuleID,
		TopicID:   in.TopicID,
		Completed: in.Completed,
		TimeSpent: in.TimeSpent,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Completed {
		row.CompletionDate = &now
	}

	stored, err := s.progress.UpsertProgress(ctx, row)
	if err != nil {
		return nil, utils.NewInternalError("Error updating progress", err)
	}
	return stored, nil
}

func (s *ProgressService) GetUserProgress(ctx context.Context, userID uint) (*models.UserProgressReport, error) {
	rows, err := s.progress.ListUserProgress(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Error fetching user progress", err)
	}
	report := SummarizeUserProgress(rows)
	return &report, nil
}

func (s *ProgressService) GetModuleProgress(ctx context.Context, userID uint, moduleID string) (*models.ModuleProgressReport, error) {
	rows, err := s.progress.ListModuleProgress(ctx, userID, moduleID)
	if err != nil {
		return nil, utils.NewInternalError("Error fetching module progress", err)
	}

	report, topicsErr := SummarizeModuleProgress(moduleID, rows)
	if topicsErr != nil {
		s.log.Warn().Err(topicsErr).Str("module_id", moduleID).Msg("module topics not parsable")
	}
	return &report, nil
}
