package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath_backend/internal/catalog"
)

func newTestGenerator() *Generator {
	return NewGenerator(catalog.NewKnowledgeBase())
}

func TestGenerateSkillGapUnknownPath(t *testing.T) {
	_, err := newTestGenerator().GenerateSkillGap("NonexistentPath", []string{})
	assert.ErrorIs(t, err, ErrUnknownCareerPath)
}

func TestGenerateSkillGapSetDifference(t *testing.T) {
	g := newTestGenerator()
	current := []string{"Advanced Programming", "Basic Communication"}

	report, err := g.GenerateSkillGap("Senior Software Developer", current)
	require.NoError(t, err)

	assert.Equal(t, "Senior Software Developer", report.CareerPath)
	assert.Equal(t, current, report.CurrentSkills)
	assert.Equal(t, []string{"System Design", "Leadership", "Project Management"}, report.MissingSkills)
	require.Len(t, report.Recommendations, len(report.MissingSkills))

	required := make(map[string]bool, len(report.RequiredSkills))
	for _, s := range report.RequiredSkills {
		required[s] = true
	}
	for i, missing := range report.MissingSkills {
		assert.True(t, required[missing], "missing skill %q not in required set", missing)
		assert.Equal(t, missing, report.Recommendations[i].Skill)
	}
}

func TestGenerateSkillGapUsesCuratedTemplates(t *testing.T) {
	g := newTestGenerator()

	report, err := g.GenerateSkillGap("Senior Software Developer", []string{"Advanced Programming", "Leadership", "Project Management"})
	require.NoError(t, err)
	require.Equal(t, []string{"System Design"}, report.MissingSkills)

	rec := report.Recommendations[0]
	assert.Contains(t, rec.Courses, "System Design Course on Udemy")
	assert.Contains(t, rec.Resources, "System Design Primer")
	assert.Equal(t, "3-6 months", rec.TimeToLearn)
}

func TestGenerateSkillGapPlaceholderForUncuratedSkill(t *testing.T) {
	g := newTestGenerator()

	// "Dedication to study" has no curated template; it must still appear
	// with a placeholder rather than being dropped.
	report, err := g.GenerateSkillGap("Medical Field Preparation", []string{"Biology", "Chemistry", "Physics"})
	require.NoError(t, err)
	require.Equal(t, []string{"Dedication to study"}, report.MissingSkills)

	rec := report.Recommendations[0]
	assert.Equal(t, "Dedication to study", rec.Skill)
	assert.Empty(t, rec.Courses)
	assert.Empty(t, rec.Resources)
	assert.Equal(t, "1-3 months", rec.TimeToLearn)
}

func TestGenerateSkillGapMatchIsCaseInsensitive(t *testing.T) {
	g := newTestGenerator()

	report, err := g.GenerateSkillGap("Business Analyst", []string{"communication", "  data analysis "})
	require.NoError(t, err)
	assert.Equal(t, []string{"Analytical Skills", "Business Knowledge"}, report.MissingSkills)
}

func TestGenerateSkillGapNoGaps(t *testing.T) {
	g := newTestGenerator()
	profile, ok := catalog.NewKnowledgeBase().ProfileFor("Software Engineering")
	require.True(t, ok)

	report, err := g.GenerateSkillGap("Software Engineering", profile.RequiredSkills)
	require.NoError(t, err)
	assert.Empty(t, report.MissingSkills)
	assert.Empty(t, report.Recommendations)
}
