package app

import (
	"context"
	"edu_course_backend/internal/config"
	"edu_course_backend/internal/controller"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/service"
	"edu_course_backend/pkg/database"
	"edu_course_backend/pkg/logger"
	"edu_course_backend/pkg/monitoring"
	"edu_course_backend/pkg/security"
	"edu_course_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	catalog    *repository.CatalogRepository
	course     *repository.CourseRepository
	lesson     *repository.LessonRepository
	enrollment *repository.EnrollmentRepository
	assignment *repository.AssignmentRepository
	submission *repository.SubmissionRepository
	review     *repository.ReviewRepository
	progress   *repository.ProgressRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	storage    *service.StorageService
	catalog    *service.CatalogService
	course     *service.CourseService
	lesson     *service.LessonService
	enrollment *service.EnrollmentService
	assignment *service.AssignmentService
	grading    *service.GradingService
	review     *service.ReviewService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	catalog    *controller.CatalogController
	course     *controller.CourseController
	lesson     *controller.LessonController
	assignment *controller.AssignmentController
	grading    *controller.GradingController
	review     *controller.ReviewController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		catalog:    repository.NewCatalogRepository(db),
		course:     repository.NewCourseRepository(db),
		lesson:     repository.NewLessonRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		submission: repository.NewSubmissionRepository(db),
		review:     repository.NewReviewRepository(db),
		progress:   repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.catalog = service.NewCatalogService(repos.course, repos.catalog, rdb)
	s.course = service.NewCourseService(repos.course, repos.catalog, repos.lesson, repos.review, repos.enrollment, s.storage)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course, repos.lesson, repos.progress)
	s.lesson = service.NewLessonService(repos.lesson, repos.course, repos.assignment, repos.enrollment, repos.progress, s.enrollment, s.storage)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.submission, repos.lesson, s.storage)
	s.grading = service.NewGradingService(repos.submission)
	s.review = service.NewReviewService(repos.review, repos.enrollment, repos.course)
	s.dashboard = service.NewDashboardService(repos.user, repos.course, repos.enrollment, repos.assignment, repos.submission)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		catalog:    controller.NewCatalogController(s.catalog),
		course:     controller.NewCourseController(s.course, s.enrollment, s.catalog, s.user),
		lesson:     controller.NewLessonController(s.lesson, s.user),
		assignment: controller.NewAssignmentController(s.assignment, s.user),
		grading:    controller.NewGradingController(s.grading, s.user),
		review:     controller.NewReviewController(s.review, s.user),
		dashboard:  controller.NewDashboardController(s.dashboard, s.user),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 6000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// InitDB 里已经执行过迁移，仅迁移模式到此为止
	if cfg.MigrateOnly {
		logger.Log.Info("Database migration completed, exiting")
		os.Exit(0)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("course-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
