package controller

import (
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	OnboardingService *service.OnboardingService
}

func NewOnboardingController(onboardingService *service.OnboardingService) *OnboardingController {
	return &OnboardingController{OnboardingService: onboardingService}
}

// GetSteps godoc
// @Summary 引导向导步骤
// @Tags 引导
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.OnboardingStep}
// @Router /api/onboarding/steps [get]
func (c *OnboardingController) GetSteps(ctx *gin.Context) {
	util.Success(ctx, c.OnboardingService.Steps())
}

// CanProceed godoc
// @Summary 当前步骤是否可以继续
// @Tags 引导
// @Accept  json
// @Produce  json
// @Param   step path int true "步骤 1-5"
// @Param   body body PreferencesRequest true "向导中已选择的偏好"
// @Success 200 {object} util.Response{data=object}
// @Router /api/onboarding/steps/{step}/check [post]
func (c *OnboardingController) CanProceed(ctx *gin.Context) {
	step, err := strconv.Atoi(ctx.Param("step"))
	if err != nil {
		util.BadRequest(ctx, "invalid step")
		return
	}
	var req PreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{
		"step":       step,
		"canProceed": c.OnboardingService.CanProceed(step, req.toModel()),
		"lastStep":   step == service.OnboardingStepCount,
	})
}
