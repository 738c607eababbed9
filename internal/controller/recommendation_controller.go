package controller

import (
	"ai_edu_navigator/internal/middleware"
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"

	"github.com/gin-gonic/gin"
)

const defaultRecommendationLimit = 3

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetPath godoc
// @Summary 推荐学习路径
// @Description 尚未设置偏好时 data 为 null
// @Tags 推荐
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Router /api/recommendations/path [get]
func (c *RecommendationController) GetPath(ctx *gin.Context) {
	user := middleware.Session(ctx).User()
	util.Success(ctx, c.RecommendationService.GetRecommendedPath(user))
}

// GetCourses godoc
// @Summary 推荐课程
// @Tags 推荐
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "数量，默认 3"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Failure 400 {object} util.Response
// @Router /api/recommendations/courses [get]
func (c *RecommendationController) GetCourses(ctx *gin.Context) {
	limit, err := util.ParseLimit(ctx.Query("limit"), defaultRecommendationLimit)
	if err != nil {
		util.BadRequest(ctx, "limit must be a non-negative integer")
		return
	}
	user := middleware.Session(ctx).User()
	util.Success(ctx, c.RecommendationService.GetRecommendedCourses(user, limit))
}
