package controller

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/service"
	"edu_course_backend/internal/util"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
	UserService       *service.UserService
}

func NewAssignmentController(assignmentService *service.AssignmentService, userService *service.UserService) *AssignmentController {
	return &AssignmentController{
		AssignmentService: assignmentService,
		UserService:       userService,
	}
}

// GetAssignment godoc
// @Summary 作业详情
// @Description 学生视角附带自己的提交（若有）
// @Tags 作业
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "作业ID"
// @Success 200 {object} util.Response{data=service.AssignmentDetail} "成功"
// @Failure 404 {object} util.Response "作业不存在"
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	assignmentID := util.MustParseUint(ctx.Param("id"))

	var studentID uint
	if claims.Role == model.RoleStudent {
		if student, err := c.UserService.StudentProfileOf(claims.UserID); err == nil {
			studentID = student.ID
		}
	}

	detail, err := c.AssignmentService.Detail(assignmentID, studentID)
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// CreateAssignment godoc
// @Summary 创建作业
// @Description 教师仅限自己课程的课时，运营人员不限
// @Tags 作业
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Param   body body CreateAssignmentRequest true "作业信息"
// @Success 201 {object} util.Response{data=model.Assignment} "创建成功"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/lessons/{id}/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	lessonID := util.MustParseUint(ctx.Param("id"))

	var req CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
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

	in := service.CreateAssignmentInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxScore:    req.MaxScore,
	}

	assignment, err := c.AssignmentService.Create(lessonID, claims.Role, instructorID, in)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotOwnLesson), errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, assignment)
}

// swagger:model CreateAssignmentRequest
type CreateAssignmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	MaxScore    int       `json:"maxScore" binding:"omitempty,min=1,max=100"`
}

// SubmitAssignment godoc
// @Summary 提交作业
// @Description 仅学生；每个作业只能提交一次，重复提交返回提示且不覆盖
// @Tags 作业
// @Accept  mpfd
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "作业ID"
// @Param   content formData string false "文本/代码内容"
// @Param   file formData file false "附件"
// @Success 201 {object} util.Response{data=model.Submission} "提交成功"
// @Failure 400 {object} util.Response "附件内容非法"
// @Failure 409 {object} util.Response "已提交过"
// @Router /api/assignments/{id}/submit [post]
func (c *AssignmentController) SubmitAssignment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	student, err := c.UserService.StudentProfileOf(claims.UserID)
	if err != nil {
		util.Forbidden(ctx, "Only students can submit assignments")
		return
	}

	assignmentID := util.MustParseUint(ctx.Param("id"))
	content := ctx.PostForm("content")
	file, _ := ctx.FormFile("file")

	submission, err := c.AssignmentService.Submit(ctx.Request.Context(), assignmentID, student, content, file)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssignmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadySubmitted):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidFileType):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, submission)
}

// GetGrades godoc
// @Summary 我的成绩
// @Description 学生自己的已评分提交
// @Tags 作业
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Submission} "成功"
// @Router /api/grades [get]
func (c *AssignmentController) GetGrades(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	student, err := c.UserService.StudentProfileOf(claims.UserID)
	if err != nil {
		util.Forbidden(ctx, "Only students can view grades")
		return
	}

	submissions, err := c.AssignmentService.Grades(student.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, submissions)
}
