package controller

import (
	"encoding/json"
	"errors"

	"careerpath_backend/internal/service"
	"careerpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	ResumeService *service.ResumeService
}

func NewResumeController(resumeService *service.ResumeService) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

// Save godoc
// @Summary Save the resume
// @Description Stores the structured resume payload, replacing any previous version
// @Tags resume
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "resume payload"
// @Success 200 {object} util.Response{data=model.Resume}
// @Failure 400 {object} util.Response
// @Router /api/resume [put]
func (c *ResumeController) Save(ctx *gin.Context) {
	var data json.RawMessage
	if err := ctx.ShouldBindJSON(&data); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	resume, err := c.ResumeService.Save(claims.UserID, data)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resume)
}

// Get godoc
// @Summary Fetch the resume
// @Tags resume
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Resume}
// @Failure 404 {object} util.Response
// @Router /api/resume [get]
func (c *ResumeController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	resume, err := c.ResumeService.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			util.NotFound(ctx, "resume not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resume)
}
