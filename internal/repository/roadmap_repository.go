package repository

import (
	"errors"

	"careerpath_backend/internal/model"
	"careerpath_backend/internal/util"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) Create(record *model.RoadmapRecord) error {
	return r.DB.Create(record).Error
}

func (r *RoadmapRepository) FindByUser(userID uint) ([]model.RoadmapRecord, error) {
	var records []model.RoadmapRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *RoadmapRepository) FindByID(id string, userID uint) (*model.RoadmapRecord, error) {
	var record model.RoadmapRecord
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RoadmapRepository) Update(record *model.RoadmapRecord) error {
	return r.DB.Save(record).Error
}

func (r *RoadmapRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.RoadmapRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
