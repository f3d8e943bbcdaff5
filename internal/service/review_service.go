package service

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ReviewService struct {
	ReviewRepo     *repository.ReviewRepository
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
) *ReviewService {
	return &ReviewService{
		ReviewRepo:     reviewRepo,
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// Create 评价的门槛按顺序短路：必须先选课，其次不能重复评价。
// 重复判定最终由唯一索引兜底，并发下也只会有一条。
// 评价默认直接可见（approved=true），运营人员可事后下架。
func (s *ReviewService) Create(courseID uint, student *model.StudentProfile, rating int, comment string) (*model.Review, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.EnrollmentRepo.Find(student.ID, course.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrReviewNeedsEnroll
		}
		return nil, err
	}

	review := &model.Review{
		CourseID:  course.ID,
		StudentID: student.ID,
		Rating:    rating,
		Comment:   comment,
		Approved:  true,
	}

	created, err := s.ReviewRepo.Create(review)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, util.ErrAlreadyReviewed
	}
	return review, nil
}

// Moderate 运营人员审核开关，控制评价是否计入展示与均分
func (s *ReviewService) Moderate(reviewID uint, approved bool) (*model.Review, error) {
	review, err := s.ReviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrReviewNotFound
		}
		return nil, err
	}

	if err := s.ReviewRepo.SetApproved(review.ID, approved); err != nil {
		return nil, err
	}
	return s.ReviewRepo.FindByID(review.ID)
}
