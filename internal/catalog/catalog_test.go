package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath_backend/internal/model"
)

func TestForTierNonEmptyWithUniqueIDs(t *testing.T) {
	c := NewCatalog()
	for _, tier := range model.Tiers() {
		questions, err := c.ForTier(tier)
		require.NoError(t, err)
		require.NotEmpty(t, questions)

		seen := make(map[string]bool, len(questions))
		for _, q := range questions {
			assert.Falsef(t, seen[q.ID], "tier %s: duplicate question id %q", tier, q.ID)
			seen[q.ID] = true
			assert.NotEmpty(t, q.Prompt)
			assert.NotEmpty(t, q.Category)

			switch q.Kind {
			case model.ChoiceQuestion:
				assert.NotEmptyf(t, q.Options, "tier %s: choice question %s has no options", tier, q.ID)
			case model.RatingQuestion:
				assert.Emptyf(t, q.Options, "tier %s: rating question %s should have no options", tier, q.ID)
			default:
				t.Fatalf("tier %s: question %s has unknown kind %q", tier, q.ID, q.Kind)
			}
		}
	}
}

func TestForTierUnknown(t *testing.T) {
	_, err := NewCatalog().ForTier(model.EducationTier("bootcamp"))
	assert.Error(t, err)
}

func TestQuestionLookup(t *testing.T) {
	c := NewCatalog()

	q, ok := c.Question(model.TenthPass, "1")
	require.True(t, ok)
	assert.Equal(t, "academic_interest", q.Category)

	_, ok = c.Question(model.TenthPass, "999")
	assert.False(t, ok)
}

func TestKnowledgeBaseValidates(t *testing.T) {
	assert.NoError(t, NewKnowledgeBase().Validate())
}

func TestKnowledgeBaseCoversEveryChoiceOption(t *testing.T) {
	c := NewCatalog()
	kb := NewKnowledgeBase()

	// Every option of a tier's primary interest question must map to at
	// least one profile so a minimal quiz always yields a suggestion.
	primary := map[model.EducationTier]string{
		model.TenthPass:   "academic_interest",
		model.TwelfthPass: "career_field",
		model.Graduate:    "industry_preference",
	}

	for tier, category := range primary {
		questions, err := c.ForTier(tier)
		require.NoError(t, err)
		for _, q := range questions {
			if q.Category != category {
				continue
			}
			for _, opt := range q.Options {
				assert.NotEmptyf(t, kb.ProfilesFor(tier, category, opt),
					"tier %s: option %q has no career bucket", tier, opt)
			}
		}
	}
}

func TestProfileForSearchesAllTiers(t *testing.T) {
	kb := NewKnowledgeBase()

	p, ok := kb.ProfileFor("Software Engineering")
	require.True(t, ok)
	assert.Equal(t, "Software Engineering", p.CareerPath)

	p, ok = kb.ProfileFor("Operations Manager")
	require.True(t, ok)
	assert.NotEmpty(t, p.RequiredSkills)

	_, ok = kb.ProfileFor("Dragon Tamer")
	assert.False(t, ok)
}

func TestProfilesForPreservesBucketOrder(t *testing.T) {
	kb := NewKnowledgeBase()

	profiles := kb.ProfilesFor(model.TenthPass, "academic_interest", "Mathematics & Science")
	require.Len(t, profiles, 2)
	assert.Equal(t, "Engineering Preparation", profiles[0].CareerPath)
	assert.Equal(t, "Medical Field Preparation", profiles[1].CareerPath)

	assert.Empty(t, kb.ProfilesFor(model.TenthPass, "academic_interest", "Astrology"))
	assert.Empty(t, kb.ProfilesFor(model.TenthPass, "no_such_category", "x"))
}

func TestMilestoneTemplatesFallBackToGeneric(t *testing.T) {
	kb := NewKnowledgeBase()

	bespoke := kb.MilestoneTemplates("Software Engineering")
	generic := kb.MilestoneTemplates("Legal Services")

	assert.NotEqual(t, bespoke, generic)
	require.Len(t, generic, 4)
	assert.Equal(t, "Foundation Skills", generic[0].Title)
}

func TestDefaultCurrentSkills(t *testing.T) {
	assert.Equal(t, []string{"Basic Programming", "Communication", "Teamwork"},
		NewKnowledgeBase().DefaultCurrentSkills())
}
