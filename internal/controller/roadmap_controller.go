package controller

import (
	"errors"

	"careerpath_backend/internal/engine"
	"careerpath_backend/internal/service"
	"careerpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

// swagger:model GenerateRoadmapRequest
type GenerateRoadmapRequest struct {
	CareerPath string `json:"careerPath" binding:"required"`
}

// swagger:model MarkStepRequest
type MarkStepRequest struct {
	Completed bool `json:"completed"`
}

// Generate godoc
// @Summary Generate a career roadmap
// @Description Instantiates the milestone templates for a career path and stores the result
// @Tags roadmap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateRoadmapRequest true "target career"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/roadmap [post]
func (c *RoadmapController) Generate(ctx *gin.Context) {
	var req GenerateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	record, roadmap, err := c.RoadmapService.Generate(claims.UserID, req.CareerPath)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownCareerPath) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, gin.H{
		"id":      record.ID,
		"roadmap": roadmap,
	})
}

// List godoc
// @Summary Stored roadmaps
// @Tags roadmap
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.RoadmapRecord}
// @Router /api/roadmap [get]
func (c *RoadmapController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	records, err := c.RoadmapService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Get godoc
// @Summary One stored roadmap
// @Tags roadmap
// @Produce json
// @Security BearerAuth
// @Param id path string true "roadmap id"
// @Success 200 {object} util.Response{data=model.RoadmapRecord}
// @Failure 404 {object} util.Response
// @Router /api/roadmap/{id} [get]
func (c *RoadmapController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	record, err := c.RoadmapService.Get(ctx.Param("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			util.NotFound(ctx, "roadmap not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, record)
}

// MarkStep godoc
// @Summary Mark a roadmap step complete or incomplete
// @Tags roadmap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "roadmap id"
// @Param stepId path string true "step id"
// @Param body body MarkStepRequest true "completion flag"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response
// @Router /api/roadmap/{id}/steps/{stepId} [patch]
func (c *RoadmapController) MarkStep(ctx *gin.Context) {
	var req MarkStepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	roadmap, err := c.RoadmapService.MarkStep(claims.UserID, ctx.Param("id"), ctx.Param("stepId"), req.Completed)
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, roadmap)
}
