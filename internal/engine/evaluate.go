package engine

import (
	"math"
	"sort"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/model"
)

// ScoringConfig tunes how rating responses feed the evaluation. Ratings are
// monotone non-negative modifiers: at or above HighRatingThreshold the
// affiliated careers earn RatingBonus, below it nothing happens. A rating
// can never disqualify a career.
type ScoringConfig struct {
	HighRatingThreshold int
	RatingBonus         float64
	MaxSuggestions      int
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		HighRatingThreshold: 7,
		RatingBonus:         10,
		MaxSuggestions:      3,
	}
}

// Evaluator turns a completed response set into ranked career suggestions.
// It is pure and deterministic over its immutable catalog and knowledge
// base, so a single instance serves all users concurrently.
type Evaluator struct {
	Catalog *catalog.Catalog
	KB      *catalog.KnowledgeBase
	Scoring ScoringConfig
}

func NewEvaluator(cat *catalog.Catalog, kb *catalog.KnowledgeBase, scoring ScoringConfig) *Evaluator {
	if scoring.MaxSuggestions <= 0 {
		scoring = DefaultScoringConfig()
	}
	return &Evaluator{Catalog: cat, KB: kb, Scoring: scoring}
}

// Evaluate scores every reachable career profile and returns at most
// MaxSuggestions distinct careers, ordered by descending match percentage
// with ties broken by knowledge base declaration order. Questions without
// a response simply contribute no signal. The response map is iterated via
// the catalog's question order, never map order, so identical inputs always
// produce identical output.
func (e *Evaluator) Evaluate(tier model.EducationTier, responses map[string]model.Response) ([]model.CareerSuggestion, error) {
	questions, err := e.Catalog.ForTier(tier)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64)
	for _, q := range questions {
		resp, ok := responses[q.ID]
		if !ok {
			continue
		}
		switch q.Kind {
		case model.ChoiceQuestion:
			for _, p := range e.KB.ProfilesFor(tier, q.Category, resp.Choice) {
				scores[p.CareerPath] += p.BaseMatchWeight
			}
		case model.RatingQuestion:
			if resp.Rating >= e.Scoring.HighRatingThreshold {
				for _, p := range e.KB.RatingAffinity(tier, q.Category) {
					scores[p.CareerPath] += e.Scoring.RatingBonus
				}
			}
		}
	}

	candidates := e.KB.Profiles(tier)
	ranked := make([]model.CareerProfile, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].CareerPath] > scores[ranked[j].CareerPath]
	})

	maxScore := 0.0
	for _, p := range ranked {
		if s := scores[p.CareerPath]; s > maxScore {
			maxScore = s
		}
	}

	// Nothing scored: fall back to the static base weight ordering so the
	// result is never empty while the tier has at least one profile.
	if maxScore == 0 {
		return e.staticFallback(candidates), nil
	}

	suggestions := make([]model.CareerSuggestion, 0, e.Scoring.MaxSuggestions)
	for _, p := range ranked {
		score := scores[p.CareerPath]
		if score == 0 {
			break
		}
		pct := int(math.Round(score / maxScore * 100))
		suggestions = append(suggestions, newSuggestion(p, pct))
		if len(suggestions) == e.Scoring.MaxSuggestions {
			break
		}
	}
	return suggestions, nil
}

func (e *Evaluator) staticFallback(profiles []model.CareerProfile) []model.CareerSuggestion {
	ranked := make([]model.CareerProfile, len(profiles))
	copy(ranked, profiles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BaseMatchWeight > ranked[j].BaseMatchWeight
	})

	suggestions := make([]model.CareerSuggestion, 0, e.Scoring.MaxSuggestions)
	for _, p := range ranked {
		pct := int(p.BaseMatchWeight)
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		suggestions = append(suggestions, newSuggestion(p, pct))
		if len(suggestions) == e.Scoring.MaxSuggestions {
			break
		}
	}
	return suggestions
}

func newSuggestion(p model.CareerProfile, pct int) model.CareerSuggestion {
	return model.CareerSuggestion{
		CareerPath:      p.CareerPath,
		MatchPercentage: pct,
		Description:     p.Description,
		RequiredSkills:  p.RequiredSkills,
		SalaryRange:     p.SalaryRange,
		GrowthProspects: p.GrowthProspects,
		Steps:           p.NextSteps,
	}
}
