package controller

import (
	"edu_course_backend/internal/service"
	"edu_course_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type GradingController struct {
	GradingService *service.GradingService
	UserService    *service.UserService
}

func NewGradingController(gradingService *service.GradingService, userService *service.UserService) *GradingController {
	return &GradingController{
		GradingService: gradingService,
		UserService:    userService,
	}
}

// ListPendingSubmissions godoc
// @Summary 待评分提交
// @Description 教师名下课程的全部未评分提交
// @Tags 评分
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Submission} "成功"
// @Router /api/submissions/pending [get]
func (c *GradingController) ListPendingSubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	instructor, err := c.UserService.InstructorProfileOf(claims.UserID)
	if err != nil {
		util.Forbidden(ctx, "Only instructors can grade submissions")
		return
	}

	submissions, err := c.GradingService.Pending(instructor.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, submissions)
}

// swagger:model GradeRequest
type GradeRequest struct {
	Score    int    `json:"score" binding:"min=0,max=100"`
	Feedback string `json:"feedback"`
}

// GradeSubmission godoc
// @Summary 评分
// @Description 仅提交所属课程的任课教师可评分，允许重复评分覆盖
// @Tags 评分
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "提交ID"
// @Param   body body GradeRequest true "分数与评语"
// @Success 200 {object} util.Response{data=model.Submission} "评分成功"
// @Failure 403 {object} util.Response "非本人课程"
// @Router /api/submissions/{id}/grade [post]
func (c *GradingController) GradeSubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	instructor, err := c.UserService.InstructorProfileOf(claims.UserID)
	if err != nil {
		util.Forbidden(ctx, "Only instructors can grade submissions")
		return
	}

	var req GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submissionID := util.MustParseUint(ctx.Param("id"))

	submission, err := c.GradingService.Grade(submissionID, instructor.ID, req.Score, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrScoreOutOfRange):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, submission)
}
