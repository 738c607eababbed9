package controller

import (
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProgress godoc
// @Summary 学习进度
// @Description 完成率、连续学习天数、积分等级、徽章和最近动态
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ProgressReport}
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	util.Success(ctx, c.ProgressService.GetProgress(claims.UserID))
}
