package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/model"
)

func newTestSession(t *testing.T, tier model.EducationTier) *Session {
	t.Helper()
	questions, err := catalog.NewCatalog().ForTier(tier)
	require.NoError(t, err)
	s, err := NewSession(tier, questions)
	require.NoError(t, err)
	return s
}

func answerFor(q model.Question) model.Response {
	if q.Kind == model.ChoiceQuestion {
		return model.Response{Choice: q.Options[0]}
	}
	return model.Response{Rating: 5}
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t, model.TenthPass)

	assert.Equal(t, 0, s.Cursor)
	assert.False(t, s.IsCompleted())
	assert.Empty(t, s.Responses)
	assert.InDelta(t, 1.0/float64(len(s.Questions)), s.ProgressFraction(), 1e-9)
}

func TestNewSessionRequiresQuestions(t *testing.T) {
	_, err := NewSession(model.TenthPass, nil)
	assert.Error(t, err)
}

func TestRecordResponseValidation(t *testing.T) {
	s := newTestSession(t, model.TenthPass)

	err := s.RecordResponse("1", model.Response{Choice: "Underwater Basket Weaving"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, s.Responses)

	err = s.RecordResponse("2", model.Response{Rating: 0})
	assert.ErrorIs(t, err, ErrValidation)

	err = s.RecordResponse("2", model.Response{Rating: 11})
	assert.ErrorIs(t, err, ErrValidation)

	err = s.RecordResponse("999", model.Response{Rating: 5})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestRecordResponseAllowsReanswer(t *testing.T) {
	s := newTestSession(t, model.TenthPass)

	require.NoError(t, s.RecordResponse("1", model.Response{Choice: "Mathematics & Science"}))
	require.NoError(t, s.RecordResponse("1", model.Response{Choice: "Business & Commerce"}))

	assert.Len(t, s.Responses, 1)
	assert.Equal(t, "Business & Commerce", s.Responses["1"].Choice)
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := newTestSession(t, model.TenthPass)

	done, err := s.Advance()
	assert.ErrorIs(t, err, ErrIncompleteAnswer)
	assert.False(t, done)
	assert.Equal(t, 0, s.Cursor)
}

func TestSessionWalkthrough(t *testing.T) {
	s := newTestSession(t, model.TwelfthPass)

	for i := range s.Questions {
		q := s.CurrentQuestion()
		assert.Equal(t, s.Questions[i].ID, q.ID)
		require.NoError(t, s.RecordResponse(q.ID, answerFor(q)))

		done, err := s.Advance()
		require.NoError(t, err)
		if i == len(s.Questions)-1 {
			assert.True(t, done)
		} else {
			assert.False(t, done)
			assert.Equal(t, i+1, s.Cursor)
		}
	}

	assert.True(t, s.IsCompleted())
	assert.Len(t, s.Responses, len(s.Questions))
}

func TestCompletedSessionRejectsMutation(t *testing.T) {
	s := newTestSession(t, model.TenthPass)
	for range s.Questions {
		q := s.CurrentQuestion()
		require.NoError(t, s.RecordResponse(q.ID, answerFor(q)))
		_, err := s.Advance()
		require.NoError(t, err)
	}

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.ErrorIs(t, s.Retreat(), ErrAlreadyCompleted)
	assert.ErrorIs(t, s.RecordResponse("1", model.Response{Choice: "Arts & Literature"}), ErrAlreadyCompleted)
}

func TestRetreat(t *testing.T) {
	s := newTestSession(t, model.TenthPass)

	assert.ErrorIs(t, s.Retreat(), ErrAtStart)

	q := s.CurrentQuestion()
	require.NoError(t, s.RecordResponse(q.ID, answerFor(q)))
	_, err := s.Advance()
	require.NoError(t, err)
	require.Equal(t, 1, s.Cursor)

	require.NoError(t, s.Retreat())
	assert.Equal(t, 0, s.Cursor)

	// Retreating never shrinks the response map.
	assert.Len(t, s.Responses, 1)
}

func TestProgressFraction(t *testing.T) {
	s := newTestSession(t, model.Graduate)
	total := len(s.Questions)

	for i := 0; i < total-1; i++ {
		assert.InDelta(t, float64(i+1)/float64(total), s.ProgressFraction(), 1e-9)
		q := s.CurrentQuestion()
		require.NoError(t, s.RecordResponse(q.ID, answerFor(q)))
		_, err := s.Advance()
		require.NoError(t, err)
	}
	assert.InDelta(t, 1.0, s.ProgressFraction(), 1e-9)
}
