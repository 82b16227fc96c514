package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type TopicType string

const (
	TopicTheory    TopicType = "theory"
	TopicPractical TopicType = "practical"
	TopicCode      TopicType = "code"
	TopicAdvanced  TopicType = "advanced"
)

func (t TopicType) Valid() bool {
	switch t {
	case TopicTheory, TopicPractical, TopicCode, TopicAdvanced:
		return true
	}
	return false
}

type Topic struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Type  TopicType `json:"type"`
}

// Module is read-only reference data; rows are seeded at startup.
type Module struct {
	ID            string                     `gorm:"primaryKey;size:100" json:"id"`
	Title         string                     `gorm:"not null" json:"title"`
	Description   string                     `gorm:"type:text" json:"description"`
	Difficulty    Difficulty                 `gorm:"size:20;not null" json:"difficulty"`
	EstimatedTime string                     `gorm:"size:50" json:"estimatedTime"`
	OrderIndex    int                        `gorm:"not null;default:0" json:"-"`
	Topics        datatypes.JSONSlice[Topic] `gorm:"not null" json:"topics"`
	CreatedAt     time.Time                  `json:"-"`
}

func (m *Module) Validate() error {
	if m.ID == "" || m.Title == "" {
		return fmt.Errorf("module %q: id and title are required", m.ID)
	}
	if !m.Difficulty.Valid() {
		return fmt.Errorf("module %q: unknown difficulty %q", m.ID, m.Difficulty)
	}
	seen := make(map[string]bool, len(m.Topics))
	for _, topic := range m.Topics {
		if topic.ID == "" {
			return fmt.Errorf("module %q: topic without id", m.ID)
		}
		if seen[topic.ID] {
			return fmt.Errorf("module %q: duplicate topic %q", m.ID, topic.ID)
		}
		seen[topic.ID] = true
		if !topic.Type.Valid() {
			return fmt.Errorf("module %q: topic %q has unknown type %q", m.ID, topic.ID, topic.Type)
		}
	}
	return nil
}
