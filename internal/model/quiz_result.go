package model

import (
	"encoding/json"
	"time"
)

// QuizResult stores one completed assessment: the raw responses and the
// ranked suggestions produced by the evaluation engine. The in-flight
// session itself is never persisted here.
type QuizResult struct {
	UUIDBase
	UserID         uint            `gorm:"index;not null" json:"userId"`
	EducationLevel EducationTier   `gorm:"size:20;not null" json:"educationLevel"`
	Responses      json.RawMessage `gorm:"type:json" json:"responses"`
	Suggestions    json.RawMessage `gorm:"type:json" json:"careerSuggestions"`
	CompletedAt    time.Time       `json:"completedAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
