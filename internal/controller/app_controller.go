package controller

import (
	"ai_edu_navigator/internal/middleware"
	"ai_edu_navigator/internal/util"
	"ai_edu_navigator/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	EventAppStateChange = "appStateChange"
	EventBackButton     = "backButton"
)

// AppController 接收原生壳上报的生命周期事件，只记录日志
type AppController struct{}

func NewAppController() *AppController {
	return &AppController{}
}

// swagger:model LifecycleEvent
type LifecycleEvent struct {
	Event    string `json:"event" binding:"required,oneof=appStateChange backButton"`
	IsActive *bool  `json:"isActive"`
}

// Lifecycle godoc
// @Summary 上报应用生命周期事件
// @Tags 系统
// @Accept  json
// @Produce  json
// @Param   body body LifecycleEvent true "事件"
// @Success 200 {object} util.Response{data=object}
// @Router /api/app/lifecycle [post]
func (c *AppController) Lifecycle(ctx *gin.Context) {
	var req LifecycleEvent
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ua := ctx.GetHeader("User-Agent")
	platform := util.DetectPlatform(ua)
	fields := []zap.Field{
		zap.String("device", middleware.DeviceID(ctx)),
		zap.String("platform", platform),
		zap.Bool("mobile", util.IsMobile(ua)),
	}

	switch req.Event {
	case EventAppStateChange:
		active := req.IsActive != nil && *req.IsActive
		logger.Log.Info("App state changed", append(fields, zap.Bool("isActive", active))...)
	case EventBackButton:
		logger.Log.Info("Back button pressed", fields...)
	}

	util.Success(ctx, gin.H{"event": req.Event, "platform": platform})
}
