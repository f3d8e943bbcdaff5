package controller

import (
	"edu_course_backend/internal/service"
	"edu_course_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *service.ReviewService
	UserService   *service.UserService
}

func NewReviewController(reviewService *service.ReviewService, userService *service.UserService) *ReviewController {
	return &ReviewController{
		ReviewService: reviewService,
		UserService:   userService,
	}
}

// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview godoc
// @Summary 评价课程
// @Description 仅已选课学生可评价，每门课一条；重复或未选课拒绝且不落库
// @Tags 评价
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Param   body body CreateReviewRequest true "评分与评语"
// @Success 201 {object} util.Response{data=model.Review} "评价成功"
// @Failure 403 {object} util.Response "未选课"
// @Failure 409 {object} util.Response "已评价过"
// @Router /api/courses/{id}/review [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	student, err := c.UserService.StudentProfileOf(claims.UserID)
	if err != nil {
		util.Forbidden(ctx, "Only students can review courses")
		return
	}

	var req CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courseID := util.MustParseUint(ctx.Param("id"))

	review, err := c.ReviewService.Create(courseID, student, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrReviewNeedsEnroll):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyReviewed):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, review)
}

// swagger:model ModerateReviewRequest
type ModerateReviewRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// ModerateReview godoc
// @Summary 审核评价
// @Description 运营人员上架/下架评价，下架的评价不计入课程均分
// @Tags 评价
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "评价ID"
// @Param   body body ModerateReviewRequest true "审核状态"
// @Success 200 {object} util.Response{data=model.Review} "操作成功"
// @Failure 404 {object} util.Response "评价不存在"
// @Router /api/reviews/{id}/moderate [post]
func (c *ReviewController) ModerateReview(ctx *gin.Context) {
	var req ModerateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reviewID := util.MustParseUint(ctx.Param("id"))

	review, err := c.ReviewService.Moderate(reviewID, *req.Approved)
	if err != nil {
		if errors.Is(err, util.ErrReviewNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, review)
}
