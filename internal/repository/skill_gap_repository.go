package repository

import (
	"errors"

	"careerpath_backend/internal/model"
	"careerpath_backend/internal/util"

	"gorm.io/gorm"
)

type SkillGapRepository struct {
	DB *gorm.DB
}

func NewSkillGapRepository(db *gorm.DB) *SkillGapRepository {
	return &SkillGapRepository{DB: db}
}

func (r *SkillGapRepository) Create(record *model.SkillGapRecord) error {
	return r.DB.Create(record).Error
}

func (r *SkillGapRepository) FindByUser(userID uint) ([]model.SkillGapRecord, error) {
	var records []model.SkillGapRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *SkillGapRepository) FindByID(id string, userID uint) (*model.SkillGapRecord, error) {
	var record model.SkillGapRecord
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *SkillGapRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SkillGapRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
