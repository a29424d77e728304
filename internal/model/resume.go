package model

import "encoding/json"

// Resume holds the structured resume builder payload. Rendering to PDF is
// a client-side concern.
type Resume struct {
	BaseModel
	UserID uint            `gorm:"uniqueIndex;not null" json:"userId"`
	Data   json.RawMessage `gorm:"type:json" json:"data"`
}

func (Resume) TableName() string {
	return "resumes"
}
