package service

import (
	"encoding/json"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/model"
	"careerpath_backend/internal/repository"
)

type CareerService struct {
	KB         *catalog.KnowledgeBase
	ResultRepo *repository.QuizResultRepository
}

func NewCareerService(kb *catalog.KnowledgeBase, resultRepo *repository.QuizResultRepository) *CareerService {
	return &CareerService{KB: kb, ResultRepo: resultRepo}
}

// LatestSuggestions returns the ranked careers from the user's most recent
// completed assessment.
func (s *CareerService) LatestSuggestions(userID uint) ([]model.CareerSuggestion, error) {
	result, err := s.ResultRepo.FindLatestByUser(userID)
	if err != nil {
		return nil, err
	}

	var suggestions []model.CareerSuggestion
	if err := json.Unmarshal(result.Suggestions, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// History lists all completed assessments, newest first.
func (s *CareerService) History(userID uint) ([]model.QuizResult, error) {
	return s.ResultRepo.FindByUser(userID)
}

// Profiles exposes the static career database for a tier, for browsing
// outside the quiz flow.
func (s *CareerService) Profiles(tier model.EducationTier) []model.CareerProfile {
	return s.KB.Profiles(tier)
}

// Profile looks a career path up across all tiers.
func (s *CareerService) Profile(careerPath string) (model.CareerProfile, bool) {
	return s.KB.ProfileFor(careerPath)
}
