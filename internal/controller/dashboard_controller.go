package controller

import (
	"careerpath_backend/internal/service"
	"careerpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Overview godoc
// @Summary Dashboard overview
// @Description Aggregates assessment history, latest suggestions, and roadmap progress
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.DashboardOverview}
// @Router /api/dashboard [get]
func (c *DashboardController) Overview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	overview, err := c.DashboardService.Overview(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
