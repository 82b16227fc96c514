package services

import (
	"encoding/json"
	"math"

	"pandas-platform/backend/models"
)

// CurrentStreakPlaceholder is reported as currentStreak. Streak tracking is
// not implemented.
const CurrentStreakPlaceholder = 1

// SummarizeUserProgress groups rows by module in order of first appearance.
// Rows are expected newest first, so modules are ordered by latest activity.
func SummarizeUserProgress(rows []models.ProgressWithModule) models.UserProgressReport {
	report := models.UserProgressReport{
		Progress: []models.ModuleProgressSummary{},
		Summary:  models.ProgressSummary{CurrentStreak: CurrentStreakPlaceholder},
	}

	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.ModuleID]
		if !ok {
			i = len(report.Progress)
			index[row.ModuleID] = i
			report.Progress = append(report.Progress, models.ModuleProgressSummary{
				ModuleID:    row.ModuleID,
				ModuleTitle: row.ModuleTitle,
				Difficulty:  row.Difficulty,
				Topics:      []models.TopicProgress{},
			})
		}

		group := &report.Progress[i]
		group.Topics = append(group.Topics, topicProgress(row))
		group.TotalTimeSpent += row.TimeSpent
		if row.Completed {
			group.CompletedTopics++
			report.Summary.TotalTopicsCompleted++
		}
		report.Summary.TotalTimeSpent += row.TimeSpent
	}
	report.Summary.ModulesStarted = len(report.Progress)

	return report
}

// SummarizeModuleProgress builds the per-module report. The percentage is 0
// when the module's stored topic list is missing, empty or not parsable; the
// parse error is returned alongside the report.
func SummarizeModuleProgress(moduleID string, rows []models.ProgressWithModule) (models.ModuleProgressReport, error) {
	report := models.ModuleProgressReport{Progress: []models.TopicProgress{}}
	if len(rows) == 0 {
		return report, nil
	}

	info := &models.ModuleInfo{
		ModuleID:   moduleID,
		Title:      rows[0].ModuleTitle,
		Difficulty: rows[0].Difficulty,
		Topics:     []models.Topic{},
	}
	for _, row := range rows {
		report.Progress = append(report.Progress, topicProgress(row))
		if row.Completed {
			info.CompletedTopics++
		}
		info.TotalTimeSpent += row.TimeSpent
	}

	var parseErr error
	if raw := rows[0].ModuleTopics; raw != nil && *raw != "" {
		var topics []models.Topic
		if err := json.Unmarshal([]byte(*raw), &topics); err != nil {
			parseErr = err
		} else if topics != nil {
			info.Topics = topics
		}
	}
	info.TotalTopics = len(info.Topics)
	info.CompletionPercentage = CompletionPercentage(info.CompletedTopics, info.TotalTopics)

	report.ModuleInfo = info
	return report, parseErr
}

// CompletionPercentage returns completed/total*100 rounded to one decimal, or 0 when total is 0.
func CompletionPercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

func topicProgress(row models.ProgressWithModule) models.TopicProgress {
	return models.TopicProgress{
		TopicID:        row.TopicID,
		Completed:      row.Completed,
		TimeSpent:      row.TimeSpent,
		Notes:          row.Notes,
		CompletionDate: row.CompletionDate,
		LastUpdated:    row.UpdatedAt,
	}
}
