package model

import "time"

type RoadmapStepType string

const (
	StepCourse        RoadmapStepType = "course"
	StepCertification RoadmapStepType = "certification"
	StepProject       RoadmapStepType = "project"
	StepInternship    RoadmapStepType = "internship"
	StepSkill         RoadmapStepType = "skill"
)

// RoadmapStep ids are positional ("1".."n") so regenerating the same career
// path yields a structurally identical roadmap.
type RoadmapStep struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        RoadmapStepType `json:"type"`
	Duration    string          `json:"duration"`
	Resources   []string        `json:"resources"`
	Completed   bool            `json:"completed"`
}

// swagger:model Roadmap
type Roadmap struct {
	CareerPath     string        `json:"careerPath"`
	TimelineMonths int           `json:"timelineMonths"`
	Steps          []RoadmapStep `json:"steps"`
	CreatedAt      time.Time     `json:"createdAt"`
}
