package service

import (
	"context"
	"encoding/json"
	"time"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/engine"
	"careerpath_backend/internal/model"
	"careerpath_backend/internal/repository"
	"careerpath_backend/pkg/monitoring"
)

// QuizState is the session snapshot returned to the client after every
// mutation. Suggestions is populated only once the quiz completes.
type QuizState struct {
	EducationLevel  model.EducationTier      `json:"educationLevel"`
	CurrentQuestion *model.Question          `json:"currentQuestion,omitempty"`
	QuestionNumber  int                      `json:"questionNumber"`
	TotalQuestions  int                      `json:"totalQuestions"`
	Progress        float64                  `json:"progress"`
	Completed       bool                     `json:"completed"`
	Suggestions     []model.CareerSuggestion `json:"careerSuggestions,omitempty"`
}

type QuizService struct {
	Catalog     *catalog.Catalog
	Evaluator   *engine.Evaluator
	SessionRepo *repository.SessionRepository
	ResultRepo  *repository.QuizResultRepository
}

func NewQuizService(cat *catalog.Catalog, evaluator *engine.Evaluator, sessionRepo *repository.SessionRepository, resultRepo *repository.QuizResultRepository) *QuizService {
	return &QuizService{
		Catalog:     cat,
		Evaluator:   evaluator,
		SessionRepo: sessionRepo,
		ResultRepo:  resultRepo,
	}
}

// Start opens a fresh session for the tier, replacing any in-flight one.
func (s *QuizService) Start(ctx context.Context, userID uint, tier model.EducationTier) (*QuizState, error) {
	questions, err := s.Catalog.ForTier(tier)
	if err != nil {
		return nil, err
	}

	session, err := engine.NewSession(tier, questions)
	if err != nil {
		return nil, err
	}

	if err := s.SessionRepo.Save(ctx, userID, session); err != nil {
		return nil, err
	}
	return snapshot(session, nil), nil
}

// Answer records a response for a question in the active session. The
// session is persisted back only when the engine accepted the response.
func (s *QuizService) Answer(ctx context.Context, userID uint, questionID string, resp model.Response) (*QuizState, error) {
	session, err := s.SessionRepo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := session.RecordResponse(questionID, resp); err != nil {
		return nil, err
	}

	if err := s.SessionRepo.Save(ctx, userID, session); err != nil {
		return nil, err
	}
	return snapshot(session, nil), nil
}

// Advance moves forward. On the last question it runs the evaluation
// engine, persists the result, drops the session, and returns the ranked
// suggestions in the final state.
func (s *QuizService) Advance(ctx context.Context, userID uint) (*QuizState, error) {
	session, err := s.SessionRepo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := session.Advance()
	if err != nil {
		return nil, err
	}

	if !completed {
		if err := s.SessionRepo.Save(ctx, userID, session); err != nil {
			return nil, err
		}
		return snapshot(session, nil), nil
	}

	suggestions, err := s.Evaluator.Evaluate(session.Tier, session.Responses)
	if err != nil {
		return nil, err
	}

	if err := s.persistResult(userID, session, suggestions); err != nil {
		return nil, err
	}

	// A completed quiz is final; the session has served its purpose.
	if err := s.SessionRepo.Delete(ctx, userID); err != nil {
		return nil, err
	}

	monitoring.QuizCompletions.WithLabelValues(string(session.Tier)).Inc()
	return snapshot(session, suggestions), nil
}

// Retreat steps back one question.
func (s *QuizService) Retreat(ctx context.Context, userID uint) (*QuizState, error) {
	session, err := s.SessionRepo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := session.Retreat(); err != nil {
		return nil, err
	}

	if err := s.SessionRepo.Save(ctx, userID, session); err != nil {
		return nil, err
	}
	return snapshot(session, nil), nil
}

// State returns the current snapshot without mutating anything.
func (s *QuizService) State(ctx context.Context, userID uint) (*QuizState, error) {
	session, err := s.SessionRepo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	return snapshot(session, nil), nil
}

func (s *QuizService) persistResult(userID uint, session *engine.Session, suggestions []model.CareerSuggestion) error {
	responsesJSON, err := json.Marshal(session.Responses)
	if err != nil {
		return err
	}
	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return err
	}

	return s.ResultRepo.Create(&model.QuizResult{
		UserID:         userID,
		EducationLevel: session.Tier,
		Responses:      responsesJSON,
		Suggestions:    suggestionsJSON,
		CompletedAt:    time.Now(),
	})
}

func snapshot(session *engine.Session, suggestions []model.CareerSuggestion) *QuizState {
	state := &QuizState{
		EducationLevel: session.Tier,
		TotalQuestions: len(session.Questions),
		Completed:      session.IsCompleted(),
		Suggestions:    suggestions,
	}
	if !session.IsCompleted() {
		q := session.CurrentQuestion()
		state.CurrentQuestion = &q
		state.QuestionNumber = session.Cursor + 1
		state.Progress = session.ProgressFraction()
	} else {
		state.QuestionNumber = len(session.Questions)
		state.Progress = 1
	}
	return state
}
