package controller

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/service"
	"edu_course_backend/internal/util"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService     *service.CourseService
	EnrollmentService *service.EnrollmentService
	CatalogService    *service.CatalogService
	UserService       *service.UserService
}

func NewCourseController(
	courseService *service.CourseService,
	enrollmentService *service.EnrollmentService,
	catalogService *service.CatalogService,
	userService *service.UserService,
) *CourseController {
	return &CourseController{
		CourseService:     courseService,
		EnrollmentService: enrollmentService,
		CatalogService:    catalogService,
		UserService:       userService,
	}
}

// GetCourse godoc
// @Summary 课程详情
// @Description 公开接口；携带学生令牌时返回选课状态
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.CourseDetail} "成功"
// @Failure 404 {object} util.Response "课程不存在或未发布"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	var studentID uint
	if claims := util.GetUserFromContext(ctx); claims != nil && claims.Role == model.RoleStudent {
		if student, err := c.UserService.StudentProfileOf(claims.UserID); err == nil {
			studentID = student.ID
		}
	}

	detail, err := c.CourseService.Detail(courseID, studentID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// CreateCourse godoc
// @Summary 创建课程
// @Description 仅教师；课程归属为当前登录教师
// @Tags 课程
// @Accept  mpfd
// @Produce  json
// @Security ApiKeyAuth
// @Param   title formData string true "标题"
// @Param   description formData string false "描述"
// @Param   categoryId formData int true "分类ID"
// @Param   tagIds formData string false "标签ID，逗号分隔"
// @Param   price formData number false "价格"
// @Param   published formData bool false "是否发布"
// @Param   image formData file false "封面图"
// @Success 201 {object} util.Response{data=model.Course} "创建成功"
// @Failure 403 {object} util.Response "非教师"
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	instructor, err := c.UserService.InstructorProfileOf(claims.UserID)
	if err != nil {
		util.Forbidden(ctx, "Only instructors can create courses")
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}
	categoryID := util.MustParseUint(ctx.PostForm("categoryId"))
	if categoryID == 0 {
		util.BadRequest(ctx, "categoryId is required")
		return
	}

	price, _ := strconv.ParseFloat(ctx.PostForm("price"), 64)
	published, _ := strconv.ParseBool(ctx.PostForm("published"))

	in := service.CreateCourseInput{
		Title:       title,
		Description: ctx.PostForm("description"),
		CategoryID:  categoryID,
		TagIDs:      parseIDList(ctx.PostForm("tagIds")),
		Price:       price,
		Published:   published,
	}

	image, _ := ctx.FormFile("image")

	course, err := c.CourseService.Create(ctx.Request.Context(), instructor, in, image)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.CatalogService.InvalidateDictionaries(ctx.Request.Context())
	util.Created(ctx, course)
}

// ManageCourses godoc
// @Summary 课程管理列表
// @Description 教师查看自己的课程，运营人员查看全部
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/manage/courses [get]
func (c *CourseController) ManageCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var instructorID uint
	if claims.Role == model.RoleInstructor {
		instructor, err := c.UserService.InstructorProfileOf(claims.UserID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		instructorID = instructor.ID
	}

	courses, err := c.CourseService.Manage(claims.Role, instructorID)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx, "Access denied")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, courses)
}

// Enroll godoc
// @Summary 选课
// @Description 仅学生，仅已发布课程；重复请求幂等返回已选提示
// @Tags 选课
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response "已选过该课程"
// @Success 201 {object} util.Response "选课成功"
// @Failure 403 {object} util.Response "非学生或课程未发布"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	student, err := c.UserService.StudentProfileOf(claims.UserID)
	if err != nil {
		util.Forbidden(ctx, "Only students can enroll in courses")
		return
	}

	courseID := util.MustParseUint(ctx.Param("id"))
	course, created, err := c.EnrollmentService.Enroll(student, courseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCourseNotPublished):
			util.Forbidden(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if created {
		util.Created(ctx, gin.H{"message": "Successfully enrolled in " + course.Title})
		return
	}
	util.SuccessMessage(ctx, "You are already enrolled in "+course.Title, nil)
}

func parseIDList(s string) []uint {
	if s == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		if id := util.MustParseUint(strings.TrimSpace(part)); id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
