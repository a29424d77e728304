package model

import "encoding/json"

// SkillGapRecord persists a generated SkillGapReport for the dashboard.
type SkillGapRecord struct {
	UUIDBase
	UserID     uint            `gorm:"index;not null" json:"userId"`
	CareerPath string          `gorm:"size:100;not null" json:"careerPath"`
	Report     json.RawMessage `gorm:"type:json" json:"report"`
}

func (SkillGapRecord) TableName() string {
	return "skill_gap_records"
}
