package services

import (
	"testing"
	"time"

	"pandas-platform/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

const fiveTopics = `[{"id":"a","title":"A","type":"theory"},{"id":"b","title":"B","type":"code"},` +
	`{"id":"c","title":"C","type":"theory"},{"id":"d","title":"D","type":"practical"},{"id":"e","title":"E","type":"advanced"}]`

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 40.0, CompletionPercentage(2, 5))
	assert.Equal(t, 33.3, CompletionPercentage(1, 3))
	assert.Equal(t, 66.7, CompletionPercentage(2, 3))
	assert.Equal(t, 100.0, CompletionPercentage(3, 3))
	assert.Equal(t, 0.0, CompletionPercentage(2, 0))
}

func TestSummarizeUserProgress(t *testing.T) {
	now := time.Now()
	rows := []models.ProgressWithModule{
		{ModuleID: "m2", TopicID: "x", Completed: true, TimeSpent: 5, UpdatedAt: now, ModuleTitle: strPtr("Two"), Difficulty: strPtr("beginner")},
		{ModuleID: "m1", TopicID: "a", Completed: false, TimeSpent: 7, UpdatedAt: now.Add(-time.Minute), ModuleTitle: strPtr("One")},
		{ModuleID: "m2", TopicID: "y", Completed: true, TimeSpent: 11, UpdatedAt: now.Add(-2 * time.Minute), ModuleTitle: strPtr("Two")},
		{ModuleID: "ghost", TopicID: "z", Completed: true, TimeSpent: 13, UpdatedAt: now.Add(-3 * time.Minute)},
	}

	report := SummarizeUserProgress(rows)
	require.Len(t, report.Progress, 3)

	assert.Equal(t, "m2", report.Progress[0].ModuleID)
	assert.Equal(t, "Two", *report.Progress[0].ModuleTitle)
	assert.Equal(t, 2, report.Progress[0].CompletedTopics)
	assert.Equal(t, 16, report.Progress[0].TotalTimeSpent)
	assert.Equal(t, []string{"x", "y"}, []string{report.Progress[0].Topics[0].TopicID, report.Progress[0].Topics[1].TopicID})

	assert.Equal(t, "m1", report.Progress[1].ModuleID)
	assert.Equal(t, 0, report.Progress[1].CompletedTopics)
	assert.Nil(t, report.Progress[2].ModuleTitle)

	assert.Equal(t, 3, report.Summary.TotalTopicsCompleted)
	assert.Equal(t, 36, report.Summary.TotalTimeSpent)
	assert.Equal(t, 3, report.Summary.ModulesStarted)
	assert.Equal(t, CurrentStreakPlaceholder, report.Summary.CurrentStreak)

	sum := 0
	for _, r := range rows {
		sum += r.TimeSpent
	}
	assert.Equal(t, sum, report.Summary.TotalTimeSpent)
}

func TestSummarizeUserProgressEmpty(t *testing.T) {
	report := SummarizeUserProgress(nil)
	assert.NotNil(t, report.Progress)
	assert.Empty(t, report.Progress)
	assert.Equal(t, 0, report.Summary.ModulesStarted)
	assert.Equal(t, CurrentStreakPlaceholder, report.Summary.CurrentStreak)
}

func TestSummarizeModuleProgress(t *testing.T) {
	rows := []models.ProgressWithModule{
		{ModuleID: "m", TopicID: "a", Completed: true, TimeSpent: 10, ModuleTitle: strPtr("M"), ModuleTopics: strPtr(fiveTopics)},
		{ModuleID: "m", TopicID: "b", Completed: true, TimeSpent: 5, ModuleTitle: strPtr("M"), ModuleTopics: strPtr(fiveTopics)},
		{ModuleID: "m", TopicID: "c", Completed: false, TimeSpent: 1, ModuleTitle: strPtr("M"), ModuleTopics: strPtr(fiveTopics)},
	}

	report, err := SummarizeModuleProgress("m", rows)
	require.NoError(t, err)
	require.NotNil(t, report.ModuleInfo)
	assert.Len(t, report.Progress, 3)
	assert.Equal(t, 2, report.ModuleInfo.CompletedTopics)
	assert.Equal(t, 5, report.ModuleInfo.TotalTopics)
	assert.Equal(t, 40.0, report.ModuleInfo.CompletionPercentage)
	assert.Equal(t, 16, report.ModuleInfo.TotalTimeSpent)
	assert.Equal(t, models.TopicCode, report.ModuleInfo.Topics[1].Type)
}

func TestSummarizeModuleProgressWithoutTopics(t *testing.T) {
	cases := map[string]*string{
		"null":     nil,
		"empty":    strPtr("[]"),
		"json nul": strPtr("null"),
		"garbage":  strPtr("{not json"),
	}
	for name, topics := range cases {
		t.Run(name, func(t *testing.T) {
			rows := []models.ProgressWithModule{{ModuleID: "m", TopicID: "a", Completed: true, TimeSpent: 3, ModuleTopics: topics}}

			report, _ := SummarizeModuleProgress("m", rows)
			require.NotNil(t, report.ModuleInfo)
			assert.Equal(t, 0.0, report.ModuleInfo.CompletionPercentage)
			assert.Equal(t, 0, report.ModuleInfo.TotalTopics)
			assert.Equal(t, 1, report.ModuleInfo.CompletedTopics)
		})
	}
}

func TestSummarizeModuleProgressNoRows(t *testing.T) {
	report, err := SummarizeModuleProgress("m", nil)
	require.NoError(t, err)
	assert.Nil(t, report.ModuleInfo)
	assert.NotNil(t, report.Progress)
	assert.Empty(t, report.Progress)
}
