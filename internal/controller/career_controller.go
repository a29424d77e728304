package controller

import (
	"errors"

	"careerpath_backend/internal/model"
	"careerpath_backend/internal/service"
	"careerpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	CareerService *service.CareerService
}

func NewCareerController(careerService *service.CareerService) *CareerController {
	return &CareerController{CareerService: careerService}
}

// Suggestions godoc
// @Summary Latest career suggestions
// @Description Ranked careers from the user's most recent completed assessment
// @Tags career
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.CareerSuggestion}
// @Failure 404 {object} util.Response
// @Router /api/career/suggestions [get]
func (c *CareerController) Suggestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	suggestions, err := c.CareerService.LatestSuggestions(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoQuizResult) {
			util.NotFound(ctx, "no completed quiz result")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, suggestions)
}

// History godoc
// @Summary Assessment history
// @Tags career
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.QuizResult}
// @Router /api/career/history [get]
func (c *CareerController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	results, err := c.CareerService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// Profiles godoc
// @Summary Browse the career database
// @Description Static career profiles for an education tier
// @Tags career
// @Produce json
// @Param tier query string true "education tier" Enums(tenth, twelfth, graduate)
// @Success 200 {object} util.Response{data=[]model.CareerProfile}
// @Failure 400 {object} util.Response
// @Router /api/career/profiles [get]
func (c *CareerController) Profiles(ctx *gin.Context) {
	tier, err := model.ParseEducationTier(ctx.Query("tier"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.CareerService.Profiles(tier))
}

// Profile godoc
// @Summary Look up one career path
// @Tags career
// @Produce json
// @Param path query string true "career path name"
// @Success 200 {object} util.Response{data=model.CareerProfile}
// @Failure 404 {object} util.Response
// @Router /api/career/profile [get]
func (c *CareerController) Profile(ctx *gin.Context) {
	path := ctx.Query("path")
	profile, ok := c.CareerService.Profile(path)
	if !ok {
		util.NotFound(ctx, "career path not found")
		return
	}
	util.Success(ctx, profile)
}
