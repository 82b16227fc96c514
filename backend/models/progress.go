package models

import "time"

// Progress is unique per (user, module, topic).
type Progress struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;uniqueIndex:idx_progress_user_module_topic,priority:1" json:"userId"`
	ModuleID       string     `gorm:"size:100;not null;uniqueIndex:idx_progress_user_module_topic,priority:2" json:"moduleId"`
	TopicID        string     `gorm:"size:100;not null;uniqueIndex:idx_progress_user_module_topic,priority:3" json:"topicId"`
	Completed      bool       `gorm:"not null" json:"completed"`
	TimeSpent      int        `gorm:"not null" json:"timeSpent"`
	Notes          string     `gorm:"type:text" json:"notes"`
	CompletionDate *time.Time `json:"completionDate"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (Progress) TableName() string {
	return "progress"
}

// ProgressWithModule is a progress row joined with its module's reference data.
// Module columns are nil when the module row is missing.
type ProgressWithModule struct {
	ID             uint
	UserID         uint
	ModuleID       string
	TopicID        string
	Completed      bool
	TimeSpent      int
	Notes          string
	CompletionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ModuleTitle    *string
	Difficulty     *string
	ModuleTopics   *string
}

type TopicProgress struct {
	TopicID        string     `json:"topicId"`
	Completed      bool       `json:"completed"`
	TimeSpent      int        `json:"timeSpent"`
	Notes          string     `json:"notes"`
	CompletionDate *time.Time `json:"completionDate"`
	LastUpdated    time.Time  `json:"lastUpdated"`
}

type ModuleProgressSummary struct {
	ModuleID        string          `json:"moduleId"`
	ModuleTitle     *string         `json:"moduleTitle"`
	Difficulty      *string         `json:"difficulty"`
	Topics          []TopicProgress `json:"topics"`
	CompletedTopics int             `json:"completedTopics"`
	TotalTimeSpent  int             `json:"totalTimeSpent"`
}

type ProgressSummary struct {
	TotalTopicsCompleted int `json:"totalTopicsCompleted"`
	TotalTimeSpent       int `json:"totalTimeSpent"`
	ModulesStarted       int `json:"modulesStarted"`

	// CurrentStreak is a fixed placeholder; streaks are not computed.
	CurrentStreak int `json:"currentStreak"`
}

type UserProgressReport struct {
	Progress []ModuleProgressSummary `json:"progress"`
	Summary  ProgressSummary         `json:"summary"`
}

type ModuleInfo struct {
	ModuleID             string  `json:"moduleId"`
	Title                *string `json:"title"`
	Difficulty           *string `json:"difficulty"`
	Topics               []Topic `json:"topics"`
	CompletedTopics      int     `json:"completedTopics"`
	TotalTopics          int     `json:"totalTopics"`
	CompletionPercentage float64 `json:"completionPercentage"`
	TotalTimeSpent       int     `json:"totalTimeSpent"`
}

type ModuleProgressReport struct {
	Progress   []TopicProgress `json:"progress"`
	ModuleInfo *ModuleInfo     `json:"moduleInfo"`
}
