package controller

import (
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService *service.CatalogService
}

func NewCourseController(catalogService *service.CatalogService) *CourseController {
	return &CourseController{CatalogService: catalogService}
}

// ListCourses godoc
// @Summary 课程列表
// @Description 关键词匹配标题/分类/描述；category 与 format 传 all 或留空表示不过滤
// @Tags 课程
// @Produce  json
// @Param   q query string false "关键词"
// @Param   category query string false "分类"
// @Param   format query string false "格式 audio/interactive/text/video"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var filter service.CourseFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.CatalogService.Filter(filter))
}

// GetCourse godoc
// @Summary 课程详情
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程 ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}
	course, err := c.CatalogService.GetCourse(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Categories godoc
// @Summary 课程分类
// @Tags 课程
// @Produce  json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/courses/categories [get]
func (c *CourseController) Categories(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.Categories())
}
