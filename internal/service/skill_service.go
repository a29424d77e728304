package service

import (
	"encoding/json"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/engine"
	"careerpath_backend/internal/model"
	"careerpath_backend/internal/repository"
	"careerpath_backend/pkg/monitoring"
)

type SkillService struct {
	Generator    *engine.Generator
	KB           *catalog.KnowledgeBase
	SkillGapRepo *repository.SkillGapRepository
	UserRepo     *repository.UserRepository
}

func NewSkillService(generator *engine.Generator, kb *catalog.KnowledgeBase, skillGapRepo *repository.SkillGapRepository, userRepo *repository.UserRepository) *SkillService {
	return &SkillService{
		Generator:    generator,
		KB:           kb,
		SkillGapRepo: skillGapRepo,
		UserRepo:     userRepo,
	}
}

// Analyze generates and persists a skill gap report. When the caller does
// not supply current skills we fall back to the user's stored interests,
// then to the knowledge base baseline, so the report is never computed
// against an empty skill set by accident.
func (s *SkillService) Analyze(userID uint, careerPath string, currentSkills []string) (*model.SkillGapReport, error) {
	if len(currentSkills) == 0 {
		if user, err := s.UserRepo.FindByID(userID); err == nil {
			currentSkills = user.InterestList()
		}
	}
	if len(currentSkills) == 0 {
		currentSkills = s.KB.DefaultCurrentSkills()
	}

	report, err := s.Generator.GenerateSkillGap(careerPath, currentSkills)
	if err != nil {
		return nil, err
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}

	record := &model.SkillGapRecord{
		UserID:     userID,
		CareerPath: report.CareerPath,
		Report:     reportJSON,
	}
	if err := s.SkillGapRepo.Create(record); err != nil {
		return nil, err
	}

	monitoring.ArtifactsGenerated.WithLabelValues("skill_gap").Inc()
	return report, nil
}

func (s *SkillService) List(userID uint) ([]model.SkillGapRecord, error) {
	return s.SkillGapRepo.FindByUser(userID)
}

func (s *SkillService) Get(id string, userID uint) (*model.SkillGapRecord, error) {
	return s.SkillGapRepo.FindByID(id, userID)
}
