package controller

import (
	"ai_edu_navigator/internal/middleware"
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary 首页数据
// @Description 问候语、统计、推荐路径、继续学习、推荐课程和稍后学习队列
// @Tags 首页
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Failure 401 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := middleware.Session(ctx).User()
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.DashboardService.GetUserDashboard(user))
}
