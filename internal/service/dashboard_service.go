package service

import (
	"encoding/json"
	"errors"
	"time"

	"careerpath_backend/internal/model"
	"careerpath_backend/internal/repository"
	"careerpath_backend/internal/util"
)

// DashboardOverview aggregates a user's journey through the pipeline.
type DashboardOverview struct {
	QuizzesTaken      int64                    `json:"quizzesTaken"`
	SkillGapReports   int64                    `json:"skillGapReports"`
	Roadmaps          int64                    `json:"roadmaps"`
	LatestSuggestions []model.CareerSuggestion `json:"latestSuggestions,omitempty"`
	LastQuizAt        *time.Time               `json:"lastQuizAt,omitempty"`
	ActiveRoadmap     *RoadmapProgress         `json:"activeRoadmap,omitempty"`
}

// RoadmapProgress summarizes the newest roadmap's completion state.
type RoadmapProgress struct {
	ID             string  `json:"id"`
	CareerPath     string  `json:"careerPath"`
	TimelineMonths int     `json:"timelineMonths"`
	TotalSteps     int     `json:"totalSteps"`
	CompletedSteps int     `json:"completedSteps"`
	Progress       float64 `json:"progress"`
}

type DashboardService struct {
	ResultRepo   *repository.QuizResultRepository
	SkillGapRepo *repository.SkillGapRepository
	RoadmapRepo  *repository.RoadmapRepository
}

func NewDashboardService(resultRepo *repository.QuizResultRepository, skillGapRepo *repository.SkillGapRepository, roadmapRepo *repository.RoadmapRepository) *DashboardService {
	return &DashboardService{
		ResultRepo:   resultRepo,
		SkillGapRepo: skillGapRepo,
		RoadmapRepo:  roadmapRepo,
	}
}

func (s *DashboardService) Overview(userID uint) (*DashboardOverview, error) {
	overview := &DashboardOverview{}

	var err error
	if overview.QuizzesTaken, err = s.ResultRepo.CountByUser(userID); err != nil {
		return nil, err
	}
	if overview.SkillGapReports, err = s.SkillGapRepo.CountByUser(userID); err != nil {
		return nil, err
	}
	if overview.Roadmaps, err = s.RoadmapRepo.CountByUser(userID); err != nil {
		return nil, err
	}

	result, err := s.ResultRepo.FindLatestByUser(userID)
	switch {
	case err == nil:
		overview.LastQuizAt = &result.CompletedAt
		var suggestions []model.CareerSuggestion
		if err := json.Unmarshal(result.Suggestions, &suggestions); err == nil {
			overview.LatestSuggestions = suggestions
		}
	case errors.Is(err, util.ErrNoQuizResult):
		// A fresh account simply has an empty dashboard.
	default:
		return nil, err
	}

	records, err := s.RoadmapRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		overview.ActiveRoadmap = roadmapProgress(&records[0])
	}

	return overview, nil
}

func roadmapProgress(record *model.RoadmapRecord) *RoadmapProgress {
	progress := &RoadmapProgress{
		ID:             record.ID,
		CareerPath:     record.CareerPath,
		TimelineMonths: record.TimelineMonths,
	}

	var roadmap model.Roadmap
	if err := json.Unmarshal(record.Roadmap, &roadmap); err != nil {
		return progress
	}

	progress.TotalSteps = len(roadmap.Steps)
	for _, step := range roadmap.Steps {
		if step.Completed {
			progress.CompletedSteps++
		}
	}
	if progress.TotalSteps > 0 {
		progress.Progress = float64(progress.CompletedSteps) / float64(progress.TotalSteps)
	}
	return progress
}
