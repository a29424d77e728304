package controller

import (
	"errors"

	"careerpath_backend/internal/engine"
	"careerpath_backend/internal/service"
	"careerpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	SkillService *service.SkillService
}

func NewSkillController(skillService *service.SkillService) *SkillController {
	return &SkillController{SkillService: skillService}
}

// swagger:model SkillGapRequest
type SkillGapRequest struct {
	CareerPath    string   `json:"careerPath" binding:"required"`
	CurrentSkills []string `json:"currentSkills"`
}

// Analyze godoc
// @Summary Generate a skill gap report
// @Description Computes required minus current skills for a target career; omitted current skills fall back to the user's interests
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SkillGapRequest true "target career and current skills"
// @Success 200 {object} util.Response{data=model.SkillGapReport}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/skills/gap [post]
func (c *SkillController) Analyze(ctx *gin.Context) {
	var req SkillGapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	report, err := c.SkillService.Analyze(claims.UserID, req.CareerPath, req.CurrentSkills)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownCareerPath) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, report)
}

// List godoc
// @Summary Past skill gap reports
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.SkillGapRecord}
// @Router /api/skills/gap [get]
func (c *SkillController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	records, err := c.SkillService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Get godoc
// @Summary One skill gap report
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "report id"
// @Success 200 {object} util.Response{data=model.SkillGapRecord}
// @Failure 404 {object} util.Response
// @Router /api/skills/gap/{id} [get]
func (c *SkillController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	record, err := c.SkillService.Get(ctx.Param("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			util.NotFound(ctx, "report not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, record)
}
