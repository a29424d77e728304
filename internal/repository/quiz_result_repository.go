package repository

import (
	"errors"

	"careerpath_backend/internal/model"
	"careerpath_backend/internal/util"

	"gorm.io/gorm"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

// FindLatestByUser returns the most recently completed assessment.
func (r *QuizResultRepository) FindLatestByUser(userID uint) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoQuizResult
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *QuizResultRepository) FindByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}

func (r *QuizResultRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizResult{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
