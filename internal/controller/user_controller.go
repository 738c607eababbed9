package controller

import (
	"ai_edu_navigator/internal/middleware"
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService       *service.UserService
	OnboardingService *service.OnboardingService
}

func NewUserController(userService *service.UserService, onboardingService *service.OnboardingService) *UserController {
	return &UserController{
		UserService:       userService,
		OnboardingService: onboardingService,
	}
}

// PreferencesRequest 五个字段均可缺省，整体替换已保存的偏好
// swagger:model PreferencesRequest
type PreferencesRequest struct {
	CustomerRole       model.CustomerRole       `json:"customerRole" binding:"omitempty,oneof=developer administrator data_analyst student solution_architect it data_engineer security_engineer ai_engineer"`
	LearningGoal       model.LearningGoal       `json:"learningGoal" binding:"omitempty,oneof=casual professional skill"`
	WeeklyFrequency    model.WeeklyFrequency    `json:"weeklyFrequency" binding:"omitempty,oneof=once twice thrice weekday weekend daily"`
	LearningExperience model.LearningExperience `json:"learningExperience" binding:"omitempty,oneof=voice interactive both"`
	TargetTime         model.TargetTime         `json:"targetTime" binding:"omitempty,oneof=5 10 15 20"`
}

func (r PreferencesRequest) toModel() model.Preferences {
	return model.Preferences{
		SchemaVersion:      model.PreferencesSchemaVersion,
		CustomerRole:       r.CustomerRole,
		LearningGoal:       r.LearningGoal,
		WeeklyFrequency:    r.WeeklyFrequency,
		LearningExperience: r.LearningExperience,
		TargetTime:         r.TargetTime,
	}
}

type ProfileResponse struct {
	User               *model.User `json:"user"`
	OnboardingComplete bool        `json:"onboardingComplete"`
}

// GetProfile godoc
// @Summary 获取当前用户资料
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=ProfileResponse}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := middleware.Session(ctx).User()
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, ProfileResponse{
		User:               user,
		OnboardingComplete: c.OnboardingService.HasCompletedOnboarding(user),
	})
}

// UpdatePreferences godoc
// @Summary 更新学习偏好
// @Description 整体替换偏好，缺省字段视为未知
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body PreferencesRequest true "学习偏好"
// @Success 200 {object} util.Response{data=ProfileResponse}
// @Failure 400 {object} util.Response "取值不合法"
// @Router /api/user/preferences [put]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	var req PreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdatePreferences(ctx.Request.Context(), middleware.Session(ctx), req.toModel())
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.SuccessWithNotice(ctx, util.Notice{
		Title:       "Preferences updated",
		Description: "Your learning preferences have been saved.",
	}, ProfileResponse{
		User:               user,
		OnboardingComplete: c.OnboardingService.HasCompletedOnboarding(user),
	})
}

// OnboardingStatus godoc
// @Summary 是否已完成引导
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/user/onboarding-status [get]
func (c *UserController) OnboardingStatus(ctx *gin.Context) {
	user := middleware.Session(ctx).User()
	util.Success(ctx, gin.H{"completed": c.OnboardingService.HasCompletedOnboarding(user)})
}

// GetQueue godoc
// @Summary 稍后学习队列
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/user/queue [get]
func (c *UserController) GetQueue(ctx *gin.Context) {
	courses, err := c.UserService.GetQueue(middleware.Session(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// AddToQueue godoc
// @Summary 加入稍后学习队列
// @Description 幂等，重复加入不会产生重复项
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseId path int true "课程 ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/user/queue/{courseId} [post]
func (c *UserController) AddToQueue(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}
	user, err := c.UserService.AddToQueue(ctx.Request.Context(), middleware.Session(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, queueResponse(user, id))
}

// RemoveFromQueue godoc
// @Summary 移出稍后学习队列
// @Description 不在队列中的课程直接忽略
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseId path int true "课程 ID"
// @Success 200 {object} util.Response{data=object}
// @Router /api/user/queue/{courseId} [delete]
func (c *UserController) RemoveFromQueue(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}
	user, err := c.UserService.RemoveFromQueue(ctx.Request.Context(), middleware.Session(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, queueResponse(user, id))
}

// GetSettings godoc
// @Summary 获取设置
// @Description 未保存过时返回默认设置
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Settings}
// @Router /api/user/settings [get]
func (c *UserController) GetSettings(ctx *gin.Context) {
	settings, err := c.UserService.GetSettings(middleware.Session(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// UpdateSettings godoc
// @Summary 保存设置
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body model.Settings true "设置"
// @Success 200 {object} util.Response{data=model.Settings}
// @Router /api/user/settings [put]
func (c *UserController) UpdateSettings(ctx *gin.Context) {
	settings := model.DefaultSettings()
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	saved, err := c.UserService.UpdateSettings(ctx.Request.Context(), middleware.Session(ctx), settings)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessWithNotice(ctx, util.Notice{
		Title:       "Settings updated",
		Description: "Your settings have been saved.",
	}, saved)
}

func courseIDParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("courseId"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return 0, false
	}
	return id, true
}

func queueResponse(user *model.User, courseID int) gin.H {
	queue := user.QueuedCourses
	if queue == nil {
		queue = []int{}
	}
	return gin.H{
		"queuedCourses": queue,
		"inQueue":       user.IsInQueue(courseID),
	}
}
