package engine

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoadmapUnknownPath(t *testing.T) {
	_, err := newTestGenerator().GenerateRoadmap("NonexistentPath")
	assert.ErrorIs(t, err, ErrUnknownCareerPath)
}

func TestGenerateRoadmapSoftwareEngineering(t *testing.T) {
	roadmap, err := newTestGenerator().GenerateRoadmap("Software Engineering")
	require.NoError(t, err)

	assert.Equal(t, "Software Engineering", roadmap.CareerPath)
	require.NotEmpty(t, roadmap.Steps)
	assert.False(t, roadmap.CreatedAt.IsZero())

	total := 0
	for i, step := range roadmap.Steps {
		assert.False(t, step.Completed)
		assert.Equalf(t, strconv.Itoa(i+1), step.ID, "step ids must be positional")
		total += parseMonths(step.Duration)
	}
	assert.Equal(t, total, roadmap.TimelineMonths)
}

func TestGenerateRoadmapReproducible(t *testing.T) {
	g := newTestGenerator()

	first, err := g.GenerateRoadmap("Financial Analyst")
	require.NoError(t, err)
	second, err := g.GenerateRoadmap("Financial Analyst")
	require.NoError(t, err)

	// Structurally identical modulo timestamps.
	assert.Equal(t, first.CareerPath, second.CareerPath)
	assert.Equal(t, first.TimelineMonths, second.TimelineMonths)
	assert.Equal(t, first.Steps, second.Steps)
}

func TestGenerateRoadmapGenericFallback(t *testing.T) {
	roadmap, err := newTestGenerator().GenerateRoadmap("Legal Services")
	require.NoError(t, err)

	require.Len(t, roadmap.Steps, 4)
	assert.Equal(t, "Foundation Skills", roadmap.Steps[0].Title)
	assert.Equal(t, "Specialized Training", roadmap.Steps[1].Title)
	assert.Equal(t, "Practical Experience", roadmap.Steps[2].Title)
	assert.Equal(t, "Portfolio Development", roadmap.Steps[3].Title)
	assert.Equal(t, 18, roadmap.TimelineMonths)
}

func TestParseMonths(t *testing.T) {
	assert.Equal(t, 6, parseMonths("6 months"))
	assert.Equal(t, 1, parseMonths("1 month"))
	assert.Equal(t, 0, parseMonths(""))
	assert.Equal(t, 0, parseMonths("soon"))
}
