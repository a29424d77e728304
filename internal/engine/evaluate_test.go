package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/model"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator(catalog.NewCatalog(), catalog.NewKnowledgeBase(), DefaultScoringConfig())
}

func fullResponses(t *testing.T, tier model.EducationTier) map[string]model.Response {
	t.Helper()
	questions, err := catalog.NewCatalog().ForTier(tier)
	require.NoError(t, err)
	responses := make(map[string]model.Response, len(questions))
	for _, q := range questions {
		responses[q.ID] = answerFor(q)
	}
	return responses
}

func TestEvaluateUnknownTier(t *testing.T) {
	_, err := newTestEvaluator().Evaluate(model.EducationTier("kindergarten"), nil)
	assert.Error(t, err)
}

func TestEvaluateDeterministic(t *testing.T) {
	e := newTestEvaluator()
	responses := fullResponses(t, model.Graduate)

	first, err := e.Evaluate(model.Graduate, responses)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.Evaluate(model.Graduate, responses)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluateInvariants(t *testing.T) {
	e := newTestEvaluator()
	for _, tier := range model.Tiers() {
		suggestions, err := e.Evaluate(tier, fullResponses(t, tier))
		require.NoError(t, err)
		require.NotEmpty(t, suggestions)
		assert.LessOrEqual(t, len(suggestions), 3)

		seen := make(map[string]bool)
		for i, s := range suggestions {
			assert.False(t, seen[s.CareerPath], "duplicate career path %q", s.CareerPath)
			seen[s.CareerPath] = true
			assert.GreaterOrEqual(t, s.MatchPercentage, 0)
			assert.LessOrEqual(t, s.MatchPercentage, 100)
			if i > 0 {
				assert.GreaterOrEqual(t, suggestions[i-1].MatchPercentage, s.MatchPercentage)
			}
		}
		assert.Equal(t, 100, suggestions[0].MatchPercentage)
	}
}

func TestEvaluateBusinessCommerceScenario(t *testing.T) {
	e := newTestEvaluator()
	responses := map[string]model.Response{
		"1": {Choice: "Business & Commerce"},
	}

	suggestions, err := e.Evaluate(model.TenthPass, responses)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Business & Management", suggestions[0].CareerPath)
	assert.Equal(t, 100, suggestions[0].MatchPercentage)
	assert.Len(t, suggestions, 1)
}

func TestEvaluateRatingBonusAndTieBreak(t *testing.T) {
	e := newTestEvaluator()
	// Graduate question 2 is the leadership rating; a high rating gives the
	// same bonus to Senior Software Developer and Operations Manager, so the
	// tie must break by declaration order.
	responses := map[string]model.Response{
		"2": {Rating: 9},
	}

	suggestions, err := e.Evaluate(model.Graduate, responses)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Senior Software Developer", suggestions[0].CareerPath)
	assert.Equal(t, "Operations Manager", suggestions[1].CareerPath)
	assert.Equal(t, 100, suggestions[0].MatchPercentage)
	assert.Equal(t, 100, suggestions[1].MatchPercentage)
}

func TestEvaluateLowRatingContributesNothing(t *testing.T) {
	e := newTestEvaluator()
	// Graduate question 3 is the industry preference choice; "Financial
	// Services" scores Financial Analyst, so both evaluations rank a real
	// scored profile rather than the static fallback.
	withLow, err := e.Evaluate(model.Graduate, map[string]model.Response{
		"3": {Choice: "Financial Services"},
		"2": {Rating: 2},
	})
	require.NoError(t, err)

	withoutRating, err := e.Evaluate(model.Graduate, map[string]model.Response{
		"3": {Choice: "Financial Services"},
	})
	require.NoError(t, err)

	require.Len(t, withLow, 1)
	assert.Equal(t, "Financial Analyst", withLow[0].CareerPath)
	assert.Equal(t, 100, withLow[0].MatchPercentage)
	assert.Equal(t, withoutRating, withLow)
}

func TestEvaluateEmptyResponsesFallsBackToStaticOrdering(t *testing.T) {
	e := newTestEvaluator()
	suggestions, err := e.Evaluate(model.TenthPass, map[string]model.Response{})
	require.NoError(t, err)
	require.Len(t, suggestions, 3)

	// Static base weights: Business & Management 90, Technical Vocational
	// Training 88, Engineering Preparation 85.
	assert.Equal(t, "Business & Management", suggestions[0].CareerPath)
	assert.Equal(t, 90, suggestions[0].MatchPercentage)
	assert.Equal(t, "Technical Vocational Training", suggestions[1].CareerPath)
	assert.Equal(t, "Engineering Preparation", suggestions[2].CareerPath)
}
