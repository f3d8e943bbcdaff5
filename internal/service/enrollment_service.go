package service

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	LessonRepo     *repository.LessonRepository
	ProgressRepo   *repository.ProgressRepository
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	lessonRepo *repository.LessonRepository,
	progressRepo *repository.ProgressRepository,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		LessonRepo:     lessonRepo,
		ProgressRepo:   progressRepo,
	}
}

// Enroll 幂等选课：只有已发布课程可选，重复请求返回 created=false
// 而不是错误。写入本身由唯一索引保证原子，不做先查后插。
// 未发布课程返回 ErrCourseNotPublished，与不存在的课程区分开。
func (s *EnrollmentService) Enroll(student *model.StudentProfile, courseID uint) (*model.Course, bool, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, util.ErrCourseNotFound
		}
		return nil, false, err
	}
	if !course.Published {
		return nil, false, util.ErrCourseNotPublished
	}

	created, err := s.EnrollmentRepo.Enroll(student.ID, course.ID)
	if err != nil {
		return nil, false, err
	}
	return course, created, nil
}

func (s *EnrollmentService) ListForStudent(studentID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByStudent(studentID)
}

// RecomputeProgress 由课时完成记录推导选课进度：
// progress = 已完成课时 / 总课时，全部完成时置 completed
func (s *EnrollmentService) RecomputeProgress(studentID, courseID uint) error {
	enrollment, err := s.EnrollmentRepo.Find(studentID, courseID)
	if err != nil {
		return err
	}

	total, err := s.LessonRepo.CountByCourse(courseID)
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}

	completed, err := s.ProgressRepo.CountCompletedForCourse(studentID, courseID)
	if err != nil {
		return err
	}

	progress := int(completed * 100 / total)
	if progress > 100 {
		progress = 100
	}
	return s.EnrollmentRepo.UpdateProgress(enrollment.ID, progress, progress == 100)
}
