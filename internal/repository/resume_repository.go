package repository

import (
	"errors"

	"careerpath_backend/internal/model"
	"careerpath_backend/internal/util"

	"gorm.io/gorm"
)

type ResumeRepository struct {
	DB *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

// Upsert keeps exactly one resume per user.
func (r *ResumeRepository) Upsert(resume *model.Resume) error {
	var existing model.Resume
	err := r.DB.Where("user_id = ?", resume.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(resume).Error
	}
	if err != nil {
		return err
	}
	existing.Data = resume.Data
	if err := r.DB.Save(&existing).Error; err != nil {
		return err
	}
	*resume = existing
	return nil
}

func (r *ResumeRepository) FindByUser(userID uint) (*model.Resume, error) {
	var resume model.Resume
	err := r.DB.Where("user_id = ?", userID).First(&resume).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}
