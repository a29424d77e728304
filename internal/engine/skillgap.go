package engine

import (
	"fmt"
	"strings"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/model"
)

// Generator produces the derived artifacts for a chosen career path. Like
// the Evaluator it is pure and stateless beyond the immutable knowledge
// base.
type Generator struct {
	KB *catalog.KnowledgeBase
}

func NewGenerator(kb *catalog.KnowledgeBase) *Generator {
	return &Generator{KB: kb}
}

// GenerateSkillGap computes requiredSkills − currentSkills in the profile's
// declared skill order and pairs every missing skill with exactly one
// recommendation, in the same order. Skills without a curated template get
// a placeholder recommendation rather than being dropped.
func (g *Generator) GenerateSkillGap(careerPath string, currentSkills []string) (*model.SkillGapReport, error) {
	profile, ok := g.KB.ProfileFor(careerPath)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCareerPath, careerPath)
	}

	have := make(map[string]bool, len(currentSkills))
	for _, s := range currentSkills {
		have[normalizeSkill(s)] = true
	}

	missing := make([]string, 0, len(profile.RequiredSkills))
	for _, s := range profile.RequiredSkills {
		if !have[normalizeSkill(s)] {
			missing = append(missing, s)
		}
	}

	recs := make([]model.SkillRecommendation, 0, len(missing))
	for _, skill := range missing {
		if t, ok := g.KB.SkillTemplate(skill); ok {
			recs = append(recs, t)
			continue
		}
		recs = append(recs, model.SkillRecommendation{
			Skill:       skill,
			Courses:     []string{},
			Resources:   []string{},
			TimeToLearn: "1-3 months",
		})
	}

	return &model.SkillGapReport{
		CareerPath:      profile.CareerPath,
		CurrentSkills:   currentSkills,
		RequiredSkills:  profile.RequiredSkills,
		MissingSkills:   missing,
		Recommendations: recs,
	}, nil
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
