package app

import (
	"edu_course_backend/docs"
	"edu_course_backend/internal/config"
	"edu_course_backend/internal/middleware"
	"edu_course_backend/internal/model"

	"edu_course_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
		a.registerEmployeeRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 课程目录：游客可浏览，携带学生令牌时附带选课状态
		public.GET("/courses", c.catalog.ListCourses)
		public.GET("/courses/:id", middleware.TryAuthMiddleware(a.Config), c.course.GetCourse)
		public.GET("/categories", c.catalog.ListCategories)
		public.GET("/tags", c.catalog.ListTags)
		public.GET("/instructors", c.catalog.ListInstructors)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.GET("/dashboard", c.dashboard.GetDashboard)

	// 课时访问对学生做选课门槛校验，教师与运营直接放行
	rg.GET("/lessons/:id", c.lesson.GetLesson)
	rg.GET("/assignments/:id", c.assignment.GetAssignment)

	student := rg.Group("/")
	student.Use(middleware.RoleMiddleware(model.RoleStudent))
	{
		student.POST("/courses/:id/enroll", c.course.Enroll)
		student.POST("/courses/:id/review", c.review.CreateReview)
		student.POST("/assignments/:id/submit", c.assignment.SubmitAssignment)
		student.GET("/grades", c.assignment.GetGrades)
	}
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("/")
	instructor.Use(middleware.RoleMiddleware(model.RoleInstructor, model.RoleEmployee))
	{
		instructor.GET("/manage/courses", c.course.ManageCourses)
		instructor.POST("/courses", c.course.CreateCourse)
		instructor.POST("/courses/:id/lessons", c.lesson.CreateLesson)
		instructor.POST("/lessons/:id/assignments", c.assignment.CreateAssignment)
	}

	// 评分沿归属链校验到任课教师本人，运营不参与评分
	grading := rg.Group("/")
	grading.Use(middleware.RoleMiddleware(model.RoleInstructor))
	{
		grading.GET("/submissions/pending", c.grading.ListPendingSubmissions)
		grading.POST("/submissions/:id/grade", c.grading.GradeSubmission)
	}
}

func (a *App) registerEmployeeRoutes(rg *gin.RouterGroup, c *controllers) {
	employee := rg.Group("/")
	employee.Use(middleware.RoleMiddleware(model.RoleEmployee))
	{
		employee.POST("/reviews/:id/moderate", c.review.ModerateReview)
	}
}
