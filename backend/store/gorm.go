package store

import (
	"context"
	"errors"

	"pandas-platform/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates the tables and the progress unique index.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Progress{},
	)
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Driver() string {
	return s.db.Dialector.Name()
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) ListModules(ctx context.Context) ([]models.Module, error) {
	modules := []models.Module{}
	err := s.db.WithContext(ctx).Order("order_index ASC").Order("id ASC").Find(&modules).Error
	return modules, err
}

func (s *GormStore) FindModule(ctx context.Context, id string) (*models.Module, error) {
	var module models.Module
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&module).Error; err != nil {
		return nil, notFound(err)
	}
	return &module, nil
}

func (s *GormStore) SeedModules(ctx context.Context, modules []models.Module) error {
	if len(modules) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&modules).Error
}

func (s *GormStore) UpsertProgress(ctx context.Context, p *models.Progress) (*models.Progress, error) {
	db := s.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "module_id"}, {Name: "topic_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed",
			"time_spent",
			"notes",
			"completion_date",
			"updated_at",
		}),
	}).Create(p).Error
	if err != nil {
		return nil, err
	}

	var stored models.Progress
	err = db.Where("user_id = ? AND module_id = ? AND topic_id = ?", p.UserID, p.ModuleID, p.TopicID).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

const progressWithModuleColumns = "p.id, p.user_id, p.module_id, p.topic_id, p.completed, p.time_spent, p.notes, " +
	"p.completion_date, p.created_at, p.updated_at, " +
	"m.title AS module_title, m.difficulty AS difficulty, m.topics AS module_topics"

func (s *GormStore) ListUserProgress(ctx context.Context, userID uint) ([]models.ProgressWithModule, error) {
	rows := []models.ProgressWithModule{}
	err := s.db.WithContext(ctx).
		Table("progress AS p").
		Select(progressWithModuleColumns).
		Joins("LEFT JOIN modules m ON p.module_id = m.id").
		Where("p.user_id = ?", userID).
		Order("p.updated_at DESC").
		Order("p.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ListModuleProgress(ctx context.Context, userID uint, moduleID string) ([]models.ProgressWithModule, error) {
	rows := []models.ProgressWithModule{}
	err := s.db.WithContext(ctx).
		Table("progress AS p").
		Select(progressWithModuleColumns).
		Joins("JOIN modules m ON p.module_id = m.id").
		Where("p.user_id = ? AND p.module_id = ?", userID, moduleID).
		Order("p.updated_at DESC").
		Order("p.id DESC").
		Scan(&rows).Error
	return rows, err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
