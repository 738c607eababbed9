package controller

import (
	"ai_edu_navigator/internal/middleware"
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest 邮箱格式由会话层校验，这里只要求非空
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// SessionStatus 当前设备的会话状态
type SessionStatus struct {
	State              service.SessionState `json:"state"`
	Loading            bool                 `json:"loading"`
	OnboardingComplete bool                 `json:"onboardingComplete"`
	User               *model.User          `json:"user"`
}

// Login godoc
// @Summary 邮箱登录
// @Description 模拟登录：邮箱包含 @ 即成功，用户名取邮箱 @ 之前的部分
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   X-Device-ID header string false "设备 ID，缺省时由服务端分配"
// @Param   body body LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=service.AuthResult} "登录成功"
// @Failure 400 {object} util.Response "邮箱格式错误"
// @Failure 409 {object} util.Response "已有登录请求进行中"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.AuthService.Login(ctx.Request.Context(), middleware.DeviceID(ctx), req.Email, req.Password)
	if err != nil {
		respondNotice(ctx, err, "Login failed", "")
		return
	}

	util.SuccessWithNotice(ctx, util.Notice{
		Title:       "Logged in successfully",
		Description: fmt.Sprintf("Welcome back, %s!", res.User.Name),
	}, res)
}

// Register godoc
// @Summary 注册新用户
// @Description 模拟注册：不检查邮箱是否已存在
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   X-Device-ID header string false "设备 ID，缺省时由服务端分配"
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 200 {object} util.Response{data=service.AuthResult} "注册成功"
// @Failure 400 {object} util.Response "请求参数错误或两次密码不一致"
// @Failure 409 {object} util.Response "已有登录请求进行中"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Password != req.ConfirmPassword {
		util.ErrorWithNotice(ctx, http.StatusBadRequest, util.Notice{
			Title:       "Passwords don't match",
			Description: "Please make sure your passwords match.",
		})
		return
	}

	res, err := c.AuthService.Register(ctx.Request.Context(), middleware.DeviceID(ctx), req.Name, req.Email, req.Password)
	if err != nil {
		respondNotice(ctx, err, "Registration failed", "")
		return
	}

	util.SuccessWithNotice(ctx, util.Notice{
		Title:       "Registration successful",
		Description: fmt.Sprintf("Welcome to AI Learn, %s!", res.User.Name),
	}, res)
}

// LoginWithGithub godoc
// @Summary GitHub 登录
// @Description 模拟 OAuth，生成随机的 GitHub 用户
// @Tags 认证
// @Produce  json
// @Param   X-Device-ID header string false "设备 ID"
// @Success 200 {object} util.Response{data=service.AuthResult}
// @Failure 502 {object} util.Response "第三方认证失败"
// @Router /api/auth/github [post]
func (c *AuthController) LoginWithGithub(ctx *gin.Context) {
	res, err := c.AuthService.LoginWithGithub(ctx.Request.Context(), middleware.DeviceID(ctx))
	if err != nil {
		respondNotice(ctx, err, "GitHub login failed", "Could not authenticate with GitHub")
		return
	}
	util.SuccessWithNotice(ctx, util.Notice{
		Title:       "GitHub login successful",
		Description: fmt.Sprintf("Welcome, %s!", res.User.Name),
	}, res)
}

// LoginWithLinkedin godoc
// @Summary LinkedIn 登录
// @Description 模拟 OAuth，生成随机的 LinkedIn 用户
// @Tags 认证
// @Produce  json
// @Param   X-Device-ID header string false "设备 ID"
// @Success 200 {object} util.Response{data=service.AuthResult}
// @Failure 502 {object} util.Response "第三方认证失败"
// @Router /api/auth/linkedin [post]
func (c *AuthController) LoginWithLinkedin(ctx *gin.Context) {
	res, err := c.AuthService.LoginWithLinkedin(ctx.Request.Context(), middleware.DeviceID(ctx))
	if err != nil {
		respondNotice(ctx, err, "LinkedIn login failed", "Could not authenticate with LinkedIn")
		return
	}
	util.SuccessWithNotice(ctx, util.Notice{
		Title:       "LinkedIn login successful",
		Description: fmt.Sprintf("Welcome, %s!", res.User.Name),
	}, res)
}

// Session godoc
// @Summary 当前会话
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=SessionStatus}
// @Failure 401 {object} util.Response
// @Router /api/auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	store := middleware.Session(ctx)
	user := store.User()
	util.Success(ctx, SessionStatus{
		State:              store.State(),
		Loading:            store.IsLoading(),
		OnboardingComplete: service.HasCompletedOnboarding(user),
		User:               user,
	})
}

// Logout godoc
// @Summary 退出登录
// @Description 清除设备会话，已签发的令牌随之失效
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(ctx.Request.Context(), middleware.Session(ctx)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithNotice(ctx, util.Notice{
		Title:       "Logged out",
		Description: "You have been logged out successfully.",
	}, nil)
}
