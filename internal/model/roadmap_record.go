package model

import "encoding/json"

// RoadmapRecord persists a generated Roadmap. Step completion flags are
// mutated here, never by the generator.
type RoadmapRecord struct {
	UUIDBase
	UserID         uint            `gorm:"index;not null" json:"userId"`
	CareerPath     string          `gorm:"size:100;not null" json:"careerPath"`
	TimelineMonths int             `gorm:"not null" json:"timelineMonths"`
	Roadmap        json.RawMessage `gorm:"type:json" json:"roadmap"`
}

func (RoadmapRecord) TableName() string {
	return "roadmap_records"
}
