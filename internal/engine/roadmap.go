package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"careerpath_backend/internal/model"
)

// GenerateRoadmap instantiates the knowledge base's milestone templates for
// a career path. Step ids are positional ("1".."n") so repeated generation
// is reproducible; only CreatedAt differs between invocations. Completion
// flags start false and are only ever flipped by the caller's own update
// path, never here.
func (g *Generator) GenerateRoadmap(careerPath string) (*model.Roadmap, error) {
	profile, ok := g.KB.ProfileFor(careerPath)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCareerPath, careerPath)
	}

	templates := g.KB.MilestoneTemplates(profile.CareerPath)
	steps := make([]model.RoadmapStep, 0, len(templates))
	total := 0
	for i, t := range templates {
		total += parseMonths(t.Duration)
		steps = append(steps, model.RoadmapStep{
			ID:          strconv.Itoa(i + 1),
			Title:       t.Title,
			Description: t.Description,
			Type:        t.Type,
			Duration:    t.Duration,
			Resources:   t.Resources,
			Completed:   false,
		})
	}

	return &model.Roadmap{
		CareerPath:     profile.CareerPath,
		TimelineMonths: total,
		Steps:          steps,
		CreatedAt:      time.Now(),
	}, nil
}

// parseMonths reads the leading integer of a duration like "6 months".
// Unparseable durations count as zero.
func parseMonths(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
