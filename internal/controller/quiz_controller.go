package controller

import (
	"errors"

	"careerpath_backend/internal/engine"
	"careerpath_backend/internal/model"
	"careerpath_backend/internal/service"
	"careerpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// swagger:model StartQuizRequest
type StartQuizRequest struct {
	EducationLevel string `json:"educationLevel" binding:"required,oneof=tenth twelfth graduate"`
}

// swagger:model AnswerRequest
type AnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Choice     string `json:"choice"`
	Rating     int    `json:"rating" binding:"omitempty,min=1,max=10"`
}

// Start godoc
// @Summary Start a quiz session
// @Description Opens a fresh assessment for the education tier, replacing any in-flight session
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StartQuizRequest true "education tier"
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 400 {object} util.Response
// @Router /api/quiz/start [post]
func (c *QuizController) Start(ctx *gin.Context) {
	var req StartQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tier, err := model.ParseEducationTier(req.EducationLevel)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	state, err := c.QuizService.Start(ctx.Request.Context(), claims.UserID, tier)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Answer godoc
// @Summary Answer a question
// @Description Records a choice or rating for a question in the active session; re-answering before advancing is allowed
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AnswerRequest true "answer"
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/answer [post]
func (c *QuizController) Answer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	resp := model.Response{Choice: req.Choice, Rating: req.Rating}
	state, err := c.QuizService.Answer(ctx.Request.Context(), claims.UserID, req.QuestionID, resp)
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Next godoc
// @Summary Advance to the next question
// @Description Moves forward; on the final question the assessment is evaluated and ranked career suggestions are returned
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/next [post]
func (c *QuizController) Next(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	state, err := c.QuizService.Advance(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Previous godoc
// @Summary Go back one question
// @Description Fails at the first question rather than silently doing nothing
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/previous [post]
func (c *QuizController) Previous(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	state, err := c.QuizService.Retreat(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// State godoc
// @Summary Current session state
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 404 {object} util.Response
// @Router /api/quiz/state [get]
func (c *QuizController) State(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	state, err := c.QuizService.State(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// respondQuizError maps engine and session-store errors onto the envelope.
// Everything the engine reports is a client-side state problem, not a 500.
func respondQuizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNoActiveSession):
		util.NotFound(ctx, "no active quiz session")
	case errors.Is(err, engine.ErrUnknownQuestion):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, engine.ErrValidation),
		errors.Is(err, engine.ErrIncompleteAnswer),
		errors.Is(err, engine.ErrAlreadyCompleted),
		errors.Is(err, engine.ErrAtStart):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
