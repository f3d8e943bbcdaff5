package service

import (
	"bytes"
	"edu_course_backend/internal/config"
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/pkg/database"
	"edu_course_backend/pkg/logger"
	"fmt"
	"mime/multipart"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB 每个测试用独立的内存库，表结构与生产迁移一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Log = zap.NewNop()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-unit-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = ""
	return cfg
}

// testEnv 按生产装配方式组装仓储与服务
type testEnv struct {
	db         *gorm.DB
	auth       *AuthService
	user       *UserService
	catalog    *CatalogService
	course     *CourseService
	lesson     *LessonService
	enrollment *EnrollmentService
	assignment *AssignmentService
	grading    *GradingService
	review     *ReviewService
	dashboard  *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	cfg := testConfig()
	cfg.Storage.LocalPath = t.TempDir()

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	storage := NewStorageService(cfg)
	enrollment := NewEnrollmentService(enrollmentRepo, courseRepo, lessonRepo, progressRepo)

	return &testEnv{
		db:         db,
		auth:       NewAuthService(userRepo, cfg),
		user:       NewUserService(userRepo),
		catalog:    NewCatalogService(courseRepo, catalogRepo, nil),
		course:     NewCourseService(courseRepo, catalogRepo, lessonRepo, reviewRepo, enrollmentRepo, storage),
		lesson:     NewLessonService(lessonRepo, courseRepo, assignmentRepo, enrollmentRepo, progressRepo, enrollment, storage),
		enrollment: enrollment,
		assignment: NewAssignmentService(assignmentRepo, submissionRepo, lessonRepo, storage),
		grading:    NewGradingService(submissionRepo),
		review:     NewReviewService(reviewRepo, enrollmentRepo, courseRepo),
		dashboard:  NewDashboardService(userRepo, courseRepo, enrollmentRepo, assignmentRepo, submissionRepo),
	}
}

func createStudent(t *testing.T, db *gorm.DB, name string) *model.StudentProfile {
	t.Helper()
	user := &model.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "hashed",
		Role:     model.RoleStudent,
	}
	require.NoError(t, db.Create(user).Error)
	profile := &model.StudentProfile{UserID: user.ID}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createInstructor(t *testing.T, db *gorm.DB, name string) *model.InstructorProfile {
	t.Helper()
	user := &model.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "hashed",
		Role:     model.RoleInstructor,
	}
	require.NoError(t, db.Create(user).Error)
	profile := &model.InstructorProfile{UserID: user.ID}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTag(t *testing.T, db *gorm.DB, name string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func createCourse(t *testing.T, db *gorm.DB, instructorID, categoryID uint, title string, published bool) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:        title,
		InstructorID: instructorID,
		CategoryID:   categoryID,
		Published:    published,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func createLesson(t *testing.T, db *gorm.DB, courseID uint, title string, order int) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{CourseID: courseID, Title: title, Order: order}
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

// uploadHeader 按 multipart 表单解析出 *multipart.FileHeader，
// 与 gin 的 ctx.FormFile 得到的结构一致
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func createAssignment(t *testing.T, db *gorm.DB, lessonID uint, title string) *model.Assignment {
	t.Helper()
	assignment := &model.Assignment{
		LessonID: lessonID,
		Title:    title,
		DueDate:  time.Now().Add(7 * 24 * time.Hour),
		MaxScore: 100,
	}
	require.NoError(t, db.Create(assignment).Error)
	return assignment
}
