package service

import (
	"context"
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/util"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	CatalogRepo    *repository.CatalogRepository
	LessonRepo     *repository.LessonRepository
	ReviewRepo     *repository.ReviewRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Storage        *StorageService
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	catalogRepo *repository.CatalogRepository,
	lessonRepo *repository.LessonRepository,
	reviewRepo *repository.ReviewRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	storage *StorageService,
) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		CatalogRepo:    catalogRepo,
		LessonRepo:     lessonRepo,
		ReviewRepo:     reviewRepo,
		EnrollmentRepo: enrollmentRepo,
		Storage:        storage,
	}
}

type CreateCourseInput struct {
	Title       string
	Description string
	CategoryID  uint
	TagIDs      []uint
	Price       float64
	Published   bool
}

// Create 课程归属从登录教师档案取得，不接受请求方指定
func (s *CourseService) Create(ctx context.Context, instructor *model.InstructorProfile, in CreateCourseInput, image *multipart.FileHeader) (*model.Course, error) {
	if _, err := s.CatalogRepo.FindCategoryByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, err
	}

	course := &model.Course{
		Title:        in.Title,
		Description:  in.Description,
		InstructorID: instructor.ID,
		CategoryID:   in.CategoryID,
		Price:        in.Price,
		Published:    in.Published,
	}

	if len(in.TagIDs) > 0 {
		tags, err := s.CatalogRepo.FindTagsByIDs(in.TagIDs)
		if err != nil {
			return nil, err
		}
		course.Tags = tags
	}

	if image != nil {
		src, err := image.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		// 深度校验封面内容，仅接受图片
		if err := util.ValidateUpload(src, []string{util.MimeImage}); err != nil {
			return nil, err
		}

		key := util.ObjectKey(util.UploadCourseImages, image.Filename)
		url, err := s.Storage.Upload(ctx, key, src, image.Size, image.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		course.ImageURL = url
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return s.CourseRepo.FindByID(course.ID)
}

// CourseDetail 课程详情：课时按顺序、已通过审核的评价、聚合统计，
// 以及当前学生的选课状态
type CourseDetail struct {
	Course     *model.Course     `json:"course"`
	Lessons    []model.Lesson    `json:"lessons"`
	Reviews    []model.Review    `json:"reviews"`
	IsEnrolled bool              `json:"isEnrolled"`
	Enrollment *model.Enrollment `json:"enrollment,omitempty"`
}

// Detail 仅已发布课程可见；studentID 为 0 表示访客或非学生
func (s *CourseService) Detail(courseID uint, studentID uint) (*CourseDetail, error) {
	course, err := s.CourseRepo.FindPublishedByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	courses := []model.Course{*course}
	if err := s.CourseRepo.LoadStats(courses); err != nil {
		return nil, err
	}
	course = &courses[0]

	lessons, err := s.LessonRepo.ListByCourse(course.ID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.ReviewRepo.ListApprovedByCourse(course.ID)
	if err != nil {
		return nil, err
	}

	detail := &CourseDetail{
		Course:  course,
		Lessons: lessons,
		Reviews: reviews,
	}

	if studentID != 0 {
		enrollment, err := s.EnrollmentRepo.Find(studentID, course.ID)
		if err == nil {
			detail.IsEnrolled = true
			detail.Enrollment = enrollment
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return detail, nil
}

// Manage 教师看自己的课程，运营人员看全部，其他角色拒绝
func (s *CourseService) Manage(role model.UserRole, instructorID uint) ([]model.Course, error) {
	switch role {
	case model.RoleInstructor:
		courses, err := s.CourseRepo.ListByInstructor(instructorID)
		if err != nil {
			return nil, err
		}
		if err := s.CourseRepo.LoadStats(courses); err != nil {
			return nil, err
		}
		return courses, nil
	case model.RoleEmployee:
		courses, err := s.CourseRepo.ListAll()
		if err != nil {
			return nil, err
		}
		if err := s.CourseRepo.LoadStats(courses); err != nil {
			return nil, err
		}
		return courses, nil
	default:
		return nil, util.ErrPermissionDenied
	}
}
