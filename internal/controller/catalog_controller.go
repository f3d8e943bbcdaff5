package controller

import (
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/service"
	"edu_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// ListCourses godoc
// @Summary 课程列表
// @Description 已发布课程，支持 category/tag/instructor 过滤，条件为 AND 组合
// @Tags 课程目录
// @Produce  json
// @Param   category query int false "分类ID"
// @Param   tag query int false "标签ID"
// @Param   instructor query int false "教师ID"
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	filter := repository.CourseFilter{
		CategoryID:   util.MustParseUint(ctx.Query("category")),
		TagID:        util.MustParseUint(ctx.Query("tag")),
		InstructorID: util.MustParseUint(ctx.Query("instructor")),
	}

	courses, err := c.CatalogService.ListCourses(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// ListCategories godoc
// @Summary 分类字典
// @Tags 课程目录
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Category} "成功"
// @Router /api/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.CatalogService.Categories(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// ListTags godoc
// @Summary 标签字典
// @Tags 课程目录
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Tag} "成功"
// @Router /api/tags [get]
func (c *CatalogController) ListTags(ctx *gin.Context) {
	tags, err := c.CatalogService.Tags(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tags)
}

// ListInstructors godoc
// @Summary 教师字典
// @Tags 课程目录
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.InstructorProfile} "成功"
// @Router /api/instructors [get]
func (c *CatalogController) ListInstructors(ctx *gin.Context) {
	instructors, err := c.CatalogService.Instructors(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, instructors)
}
