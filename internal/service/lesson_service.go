package service

import (
	"context"
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/util"
	"edu_course_backend/pkg/logger"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo     *repository.LessonRepository
	CourseRepo     *repository.CourseRepository
	AssignmentRepo *repository.AssignmentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	Enrollment     *EnrollmentService
	Storage        *StorageService
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	courseRepo *repository.CourseRepository,
	assignmentRepo *repository.AssignmentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	enrollment *EnrollmentService,
	storage *StorageService,
) *LessonService {
	return &LessonService{
		LessonRepo:     lessonRepo,
		CourseRepo:     courseRepo,
		AssignmentRepo: assignmentRepo,
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		Enrollment:     enrollment,
		Storage:        storage,
	}
}

type CreateLessonInput struct {
	Title       string
	Description string
	VideoURL    string
	Order       int
}

// Create 教师只能给自己的课程加课时，运营人员不受限制
func (s *LessonService) Create(ctx context.Context, courseID uint, role model.UserRole, instructorID uint, in CreateLessonInput, video, pdf *multipart.FileHeader) (*model.Lesson, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if role == model.RoleInstructor && course.InstructorID != instructorID {
		return nil, util.ErrNotOwnCourse
	}
	if role != model.RoleInstructor && role != model.RoleEmployee {
		return nil, util.ErrPermissionDenied
	}

	lesson := &model.Lesson{
		CourseID:    course.ID,
		Title:       in.Title,
		Description: in.Description,
		VideoURL:    in.VideoURL,
		Order:       in.Order,
	}

	if video != nil {
		url, duration, err := s.storeVideo(ctx, video)
		if err != nil {
			return nil, err
		}
		lesson.VideoFileURL = url
		lesson.VideoDuration = duration
	}

	if pdf != nil {
		src, err := pdf.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		// 课件只接受真实的 PDF 内容，不信任扩展名和请求头
		if err := util.ValidateUpload(src, []string{util.MimePDF}); err != nil {
			return nil, err
		}

		key := util.ObjectKey(util.UploadLessonPDFs, pdf.Filename)
		url, err := s.Storage.Upload(ctx, key, src, pdf.Size, util.MimePDF)
		if err != nil {
			return nil, err
		}
		lesson.PDFFileURL = url
	}

	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// storeVideo 先落到临时文件取时长，再交给存储后端
func (s *LessonService) storeVideo(ctx context.Context, video *multipart.FileHeader) (string, float64, error) {
	src, err := video.Open()
	if err != nil {
		return "", 0, err
	}
	defer src.Close()

	if err := util.ValidateUpload(src, []string{util.MimeVideo}); err != nil {
		return "", 0, err
	}

	tmp, err := os.CreateTemp("", "lesson-video-*"+filepath.Ext(video.Filename))
	if err != nil {
		return "", 0, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.ReadFrom(src); err != nil {
		return "", 0, err
	}

	var duration float64
	if info, err := util.GetVideoInfo(tmp.Name()); err != nil {
		// 拿不到元数据不阻塞上传
		logger.Log.Warn("video probe failed", zap.String("file", video.Filename), zap.Error(err))
	} else {
		duration = info.Duration
	}

	contentType := video.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	key := util.ObjectKey(util.UploadLessonVideos, video.Filename)
	url, err := s.Storage.UploadFile(ctx, key, tmp.Name(), contentType)
	if err != nil {
		return "", 0, err
	}
	return url, duration, nil
}

// LessonView 课时内容及其作业列表
type LessonView struct {
	Lesson      *model.Lesson      `json:"lesson"`
	Assignments []model.Assignment `json:"assignments"`
}

// View 学生必须先选课；首次浏览原子地记下完成并刷新选课进度，
// 再次浏览不产生新记录。教师与运营人员可以查看任意课时。
func (s *LessonService) View(lessonID uint, role model.UserRole, student *model.StudentProfile) (*LessonView, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	if role == model.RoleStudent {
		if _, err := s.EnrollmentRepo.Find(student.ID, lesson.CourseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrNotEnrolled
			}
			return nil, err
		}

		created, err := s.ProgressRepo.MarkViewed(student.ID, lesson.ID)
		if err != nil {
			return nil, err
		}
		if created {
			if err := s.Enrollment.RecomputeProgress(student.ID, lesson.CourseID); err != nil {
				logger.Log.Warn("progress recompute failed",
					zap.Uint("studentId", student.ID),
					zap.Uint("courseId", lesson.CourseID),
					zap.Error(err))
			}
		}
	}

	assignments, err := s.AssignmentRepo.ListByLesson(lesson.ID)
	if err != nil {
		return nil, err
	}

	return &LessonView{Lesson: lesson, Assignments: assignments}, nil
}
