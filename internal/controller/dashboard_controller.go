package controller

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/service"
	"edu_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	UserService      *service.UserService
}

func NewDashboardController(dashboardService *service.DashboardService, userService *service.UserService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		UserService:      userService,
	}
}

// GetDashboard godoc
// @Summary 工作台
// @Description 按角色返回：学生=选课与临近作业，教师=课程与待评分，运营=平台统计
// @Tags 工作台
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	switch claims.Role {
	case model.RoleStudent:
		student, err := c.UserService.StudentProfileOf(claims.UserID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		dashboard, err := c.DashboardService.ForStudent(student.ID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, dashboard)
	case model.RoleInstructor:
		instructor, err := c.UserService.InstructorProfileOf(claims.UserID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		dashboard, err := c.DashboardService.ForInstructor(instructor.ID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, dashboard)
	case model.RoleEmployee:
		dashboard, err := c.DashboardService.ForEmployee()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, dashboard)
	default:
		util.Forbidden(ctx, "Access denied")
	}
}
