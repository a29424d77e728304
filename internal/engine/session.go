package engine

import (
	"fmt"

	"careerpath_backend/internal/model"
)

// Session is the per-attempt quiz state machine. Fields are exported so a
// session round-trips through JSON (the HTTP layer parks in-flight sessions
// in Redis between requests), but callers mutate it only through its
// methods. A session is owned by exactly one in-flight attempt and must not
// be shared across goroutines.
type Session struct {
	Tier      model.EducationTier       `json:"tier"`
	Questions []model.Question          `json:"questions"`
	Cursor    int                       `json:"cursor"`
	Responses map[string]model.Response `json:"responses"`
	Completed bool                      `json:"completed"`
}

// NewSession starts an attempt over the given catalog slice.
func NewSession(tier model.EducationTier, questions []model.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions for tier %q", tier)
	}
	return &Session{
		Tier:      tier,
		Questions: questions,
		Responses: make(map[string]model.Response),
	}, nil
}

// CurrentQuestion returns the question under the cursor.
func (s *Session) CurrentQuestion() model.Question {
	return s.Questions[s.Cursor]
}

func (s *Session) IsCompleted() bool {
	return s.Completed
}

// ProgressFraction is (cursor+1)/len(questions), in (0, 1].
func (s *Session) ProgressFraction() float64 {
	return float64(s.Cursor+1) / float64(len(s.Questions))
}

// RecordResponse validates the value against the question's kind and
// inserts or overwrites the entry. Re-answering before advancing is
// allowed. State is untouched on any error.
func (s *Session) RecordResponse(questionID string, resp model.Response) error {
	if s.Completed {
		return ErrAlreadyCompleted
	}
	q, ok := s.question(questionID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	if err := validateResponse(q, resp); err != nil {
		return err
	}
	s.Responses[questionID] = resp
	return nil
}

// Advance moves the cursor forward. It requires the current question to be
// answered. On the last question it transitions to Completed and returns
// true, signaling the caller to run the evaluation engine.
func (s *Session) Advance() (completed bool, err error) {
	if s.Completed {
		return false, ErrAlreadyCompleted
	}
	if _, ok := s.Responses[s.CurrentQuestion().ID]; !ok {
		return false, ErrIncompleteAnswer
	}
	if s.Cursor == len(s.Questions)-1 {
		s.Completed = true
		return true, nil
	}
	s.Cursor++
	return false, nil
}

// Retreat moves the cursor back one question. At the first question it
// fails with ErrAtStart rather than silently doing nothing.
func (s *Session) Retreat() error {
	if s.Completed {
		return ErrAlreadyCompleted
	}
	if s.Cursor == 0 {
		return ErrAtStart
	}
	s.Cursor--
	return nil
}

func (s *Session) question(id string) (model.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}

func validateResponse(q model.Question, resp model.Response) error {
	switch q.Kind {
	case model.ChoiceQuestion:
		for _, opt := range q.Options {
			if resp.Choice == opt {
				return nil
			}
		}
		return fmt.Errorf("%w: %q is not an option of question %s", ErrValidation, resp.Choice, q.ID)
	case model.RatingQuestion:
		if resp.Rating < 1 || resp.Rating > 10 {
			return fmt.Errorf("%w: rating %d out of range [1,10]", ErrValidation, resp.Rating)
		}
		return nil
	}
	return fmt.Errorf("%w: question %s has unknown kind %q", ErrValidation, q.ID, q.Kind)
}
