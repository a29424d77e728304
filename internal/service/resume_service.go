package service

import (
	"encoding/json"

	"careerpath_backend/internal/model"
	"careerpath_backend/internal/repository"
)

type ResumeService struct {
	ResumeRepo *repository.ResumeRepository
}

func NewResumeService(resumeRepo *repository.ResumeRepository) *ResumeService {
	return &ResumeService{ResumeRepo: resumeRepo}
}

// Save stores the structured resume payload, replacing any previous one.
func (s *ResumeService) Save(userID uint, data json.RawMessage) (*model.Resume, error) {
	resume := &model.Resume{
		UserID: userID,
		Data:   data,
	}
	if err := s.ResumeRepo.Upsert(resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) Get(userID uint) (*model.Resume, error) {
	return s.ResumeRepo.FindByUser(userID)
}
