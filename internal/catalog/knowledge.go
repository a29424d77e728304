package catalog

import (
	"fmt"

	"careerpath_backend/internal/model"
)

// MilestoneTemplate is one knowledge base roadmap step before instantiation.
// Duration carries a declared month count ("6 months") that the roadmap
// generator parses to compute the overall timeline.
type MilestoneTemplate struct {
	Title       string
	Description string
	Type        model.RoadmapStepType
	Duration    string
	Resources   []string
}

type tierKnowledge struct {
	// profiles in declaration order; the order is the scoring tie-break.
	profiles []model.CareerProfile
	// buckets: category → selected option → career paths that accrue weight.
	buckets map[string]map[string][]string
	// ratings: category → career paths that earn the high-rating bonus.
	ratings map[string][]string
}

// KnowledgeBase is the static reference data behind the recommendation
// pipeline. Like the Catalog it is built once and never mutated, so
// concurrent reads need no synchronization.
type KnowledgeBase struct {
	tiers          map[model.EducationTier]*tierKnowledge
	skillTemplates map[string]model.SkillRecommendation
	milestones     map[string][]MilestoneTemplate
	generic        []MilestoneTemplate
	defaultSkills  []string
}

// NewKnowledgeBase returns the built-in career knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		tiers:          careerProfiles(),
		skillTemplates: skillTemplates(),
		milestones:     milestoneTemplates(),
		generic:        genericMilestones(),
		defaultSkills:  []string{"Basic Programming", "Communication", "Teamwork"},
	}
}

// Profiles returns the tier's career profiles in declaration order.
func (kb *KnowledgeBase) Profiles(tier model.EducationTier) []model.CareerProfile {
	tk, ok := kb.tiers[tier]
	if !ok {
		return nil
	}
	return tk.profiles
}

// ProfilesFor resolves the (category, option) bucket to career profiles,
// preserving the bucket's declared order. A missing bucket is not an
// error; it simply contributes no signal.
func (kb *KnowledgeBase) ProfilesFor(tier model.EducationTier, category, option string) []model.CareerProfile {
	tk, ok := kb.tiers[tier]
	if !ok {
		return nil
	}
	bucket, ok := tk.buckets[category]
	if !ok {
		return nil
	}
	return kb.resolve(tk, bucket[option])
}

// RatingAffinity returns the careers that earn a bonus when the category's
// rating crosses the configured threshold.
func (kb *KnowledgeBase) RatingAffinity(tier model.EducationTier, category string) []model.CareerProfile {
	tk, ok := kb.tiers[tier]
	if !ok {
		return nil
	}
	return kb.resolve(tk, tk.ratings[category])
}

func (kb *KnowledgeBase) resolve(tk *tierKnowledge, paths []string) []model.CareerProfile {
	if len(paths) == 0 {
		return nil
	}
	profiles := make([]model.CareerProfile, 0, len(paths))
	for _, path := range paths {
		for _, p := range tk.profiles {
			if p.CareerPath == path {
				profiles = append(profiles, p)
				break
			}
		}
	}
	return profiles
}

// ProfileFor looks up a career path across all tiers, in canonical tier
// order then declaration order.
func (kb *KnowledgeBase) ProfileFor(careerPath string) (model.CareerProfile, bool) {
	for _, tier := range model.Tiers() {
		tk, ok := kb.tiers[tier]
		if !ok {
			continue
		}
		for _, p := range tk.profiles {
			if p.CareerPath == careerPath {
				return p, true
			}
		}
	}
	return model.CareerProfile{}, false
}

// SkillTemplate returns the curated recommendation for a skill, if any.
func (kb *KnowledgeBase) SkillTemplate(skill string) (model.SkillRecommendation, bool) {
	t, ok := kb.skillTemplates[skill]
	return t, ok
}

// MilestoneTemplates returns the roadmap steps for a career path, falling
// back to the generic four-stage template when no bespoke set exists.
func (kb *KnowledgeBase) MilestoneTemplates(careerPath string) []MilestoneTemplate {
	if ms, ok := kb.milestones[careerPath]; ok {
		return ms
	}
	return kb.generic
}

// DefaultCurrentSkills is the seed skill set used when the caller supplies
// no baseline.
func (kb *KnowledgeBase) DefaultCurrentSkills() []string {
	return kb.defaultSkills
}

// Validate checks internal consistency: every bucket and rating affinity
// must reference a declared profile, and career paths must be unique
// within their tier. It exists for tests and startup sanity checks.
func (kb *KnowledgeBase) Validate() error {
	for tier, tk := range kb.tiers {
		seen := make(map[string]bool, len(tk.profiles))
		for _, p := range tk.profiles {
			if seen[p.CareerPath] {
				return fmt.Errorf("tier %s: duplicate career path %q", tier, p.CareerPath)
			}
			seen[p.CareerPath] = true
		}
		for category, bucket := range tk.buckets {
			for option, paths := range bucket {
				for _, path := range paths {
					if !seen[path] {
						return fmt.Errorf("tier %s: bucket %s/%s references unknown career path %q", tier, category, option, path)
					}
				}
			}
		}
		for category, paths := range tk.ratings {
			for _, path := range paths {
				if !seen[path] {
					return fmt.Errorf("tier %s: rating affinity %s references unknown career path %q", tier, category, path)
				}
			}
		}
	}
	return nil
}
