package controller

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/service"
	"edu_course_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
	UserService   *service.UserService
}

func NewLessonController(lessonService *service.LessonService, userService *service.UserService) *LessonController {
	return &LessonController{
		LessonService: lessonService,
		UserService:   userService,
	}
}

// GetLesson godoc
// @Summary 课时详情
// @Description 学生须已选课，首次浏览自动记为完成；教师与运营人员可直接查看
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response{data=service.LessonView} "成功"
// @Failure 403 {object} util.Response "未选课"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /api/lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	lessonID := util.MustParseUint(ctx.Param("id"))

	var student *model.StudentProfile
	if claims.Role == model.RoleStudent {
		profile, err := c.UserService.StudentProfileOf(claims.UserID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		student = profile
	}

	view, err := c.LessonService.View(lessonID, claims.Role, student)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotEnrolled):
			util.Forbidden(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

// CreateLesson godoc
// @Summary 创建课时
// @Description 教师仅限自己的课程，运营人员不限；可上传视频与PDF
// @Tags 课时
// @Accept  mpfd
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Param   title formData string true "标题"
// @Param   description formData string false "描述"
// @Param   videoUrl formData string false "外部视频链接"
// @Param   order formData int false "排序值"
// @Param   video formData file false "视频文件"
// @Param   pdf formData file false "PDF文件"
// @Success 201 {object} util.Response{data=model.Lesson} "创建成功"
// @Failure 400 {object} util.Response "上传内容非法"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/courses/{id}/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	courseID := util.MustParseUint(ctx.Param("id"))

	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}

	var instructorID uint
	if claims.Role == model.RoleInstructor {
		instructor, err := c.UserService.InstructorProfileOf(claims.UserID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		instructorID = instructor.ID
	}

	order, _ := strconv.Atoi(ctx.PostForm("order"))
	in := service.CreateLessonInput{
		Title:       title,
		Description: ctx.PostForm("description"),
		VideoURL:    ctx.PostForm("videoUrl"),
		Order:       order,
	}

	video, _ := ctx.FormFile("video")
	pdf, _ := ctx.FormFile("pdf")

	lesson, err := c.LessonService.Create(ctx.Request.Context(), courseID, claims.Role, instructorID, in, video, pdf)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotOwnCourse), errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidFileType):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, lesson)
}
