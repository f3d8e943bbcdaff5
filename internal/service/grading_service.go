package service

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type GradingService struct {
	SubmissionRepo *repository.SubmissionRepository
}

func NewGradingService(submissionRepo *repository.SubmissionRepository) *GradingService {
	return &GradingService{SubmissionRepo: submissionRepo}
}

// Pending 教师名下课程的未评分提交
func (s *GradingService) Pending(instructorID uint) ([]model.Submission, error) {
	return s.SubmissionRepo.ListPendingByInstructor(instructorID)
}

// Grade 评分权限沿 作业→课时→课程→教师 归属链校验，其他教师一律拒绝；
// 拒绝时提交原样保留。允许对已评分提交重新评分。
func (s *GradingService) Grade(submissionID uint, instructorID uint, score int, feedback string) (*model.Submission, error) {
	if score < 0 || score > 100 {
		return nil, util.ErrScoreOutOfRange
	}

	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}

	if submission.Assignment.Lesson.Course.InstructorID != instructorID {
		return nil, util.ErrPermissionDenied
	}

	if err := s.SubmissionRepo.UpdateGrade(submission.ID, score, feedback); err != nil {
		return nil, err
	}
	return s.SubmissionRepo.FindByID(submission.ID)
}
