package service

import (
	"encoding/json"
	"fmt"

	"careerpath_backend/internal/engine"
	"careerpath_backend/internal/model"
	"careerpath_backend/internal/repository"
	"careerpath_backend/internal/util"
	"careerpath_backend/pkg/monitoring"
)

type RoadmapService struct {
	Generator   *engine.Generator
	RoadmapRepo *repository.RoadmapRepository
}

func NewRoadmapService(generator *engine.Generator, roadmapRepo *repository.RoadmapRepository) *RoadmapService {
	return &RoadmapService{Generator: generator, RoadmapRepo: roadmapRepo}
}

// Generate builds a roadmap for the career path and persists it. The
// stored copy is the one whose step completion flags get mutated later.
func (s *RoadmapService) Generate(userID uint, careerPath string) (*model.RoadmapRecord, *model.Roadmap, error) {
	roadmap, err := s.Generator.GenerateRoadmap(careerPath)
	if err != nil {
		return nil, nil, err
	}

	roadmapJSON, err := json.Marshal(roadmap)
	if err != nil {
		return nil, nil, err
	}

	record := &model.RoadmapRecord{
		UserID:         userID,
		CareerPath:     roadmap.CareerPath,
		TimelineMonths: roadmap.TimelineMonths,
		Roadmap:        roadmapJSON,
	}
	if err := s.RoadmapRepo.Create(record); err != nil {
		return nil, nil, err
	}

	monitoring.ArtifactsGenerated.WithLabelValues("roadmap").Inc()
	return record, roadmap, nil
}

func (s *RoadmapService) List(userID uint) ([]model.RoadmapRecord, error) {
	return s.RoadmapRepo.FindByUser(userID)
}

func (s *RoadmapService) Get(id string, userID uint) (*model.RoadmapRecord, error) {
	return s.RoadmapRepo.FindByID(id, userID)
}

// MarkStep flips one step's completion flag on a stored roadmap.
func (s *RoadmapService) MarkStep(userID uint, recordID, stepID string, completed bool) (*model.Roadmap, error) {
	record, err := s.RoadmapRepo.FindByID(recordID, userID)
	if err != nil {
		return nil, err
	}

	var roadmap model.Roadmap
	if err := json.Unmarshal(record.Roadmap, &roadmap); err != nil {
		return nil, err
	}

	found := false
	for i := range roadmap.Steps {
		if roadmap.Steps[i].ID == stepID {
			roadmap.Steps[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: step %q", util.ErrRecordNotFound, stepID)
	}

	roadmapJSON, err := json.Marshal(&roadmap)
	if err != nil {
		return nil, err
	}
	record.Roadmap = roadmapJSON
	if err := s.RoadmapRepo.Update(record); err != nil {
		return nil, err
	}
	return &roadmap, nil
}
