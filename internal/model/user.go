package model

import (
	"encoding/json"
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Name           string          `gorm:"size:100;not null" json:"name"`
	Email          string          `gorm:"size:100;unique;not null" json:"email"`
	Password       string          `gorm:"size:100;not null" json:"-"`
	Age            int             `gorm:"default:0" json:"age"`
	EducationLevel EducationTier   `gorm:"size:20" json:"educationLevel"`
	Interests      json.RawMessage `gorm:"type:json" json:"interests"`
	Avatar         string          `gorm:"size:255" json:"avatar"`
	LastLogin      time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen       time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// InterestList decodes the stored interests column. A broken or empty
// column decodes to nil rather than failing the caller.
func (u *User) InterestList() []string {
	if len(u.Interests) == 0 {
		return nil
	}
	var interests []string
	if err := json.Unmarshal(u.Interests, &interests); err != nil {
		return nil
	}
	return interests
}
