package service

import (
	"context"
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/util"
	"errors"
	"mime/multipart"
	"time"

	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
	LessonRepo     *repository.LessonRepository
	Storage        *StorageService
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	lessonRepo *repository.LessonRepository,
	storage *StorageService,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
		LessonRepo:     lessonRepo,
		Storage:        storage,
	}
}

type CreateAssignmentInput struct {
	Title       string
	Description string
	DueDate     time.Time
	MaxScore    int
}

// Create 教师只能给自己课程的课时布置作业，运营人员不受限制
func (s *AssignmentService) Create(lessonID uint, role model.UserRole, instructorID uint, in CreateAssignmentInput) (*model.Assignment, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	if role == model.RoleInstructor && lesson.Course.InstructorID != instructorID {
		return nil, util.ErrNotOwnLesson
	}
	if role != model.RoleInstructor && role != model.RoleEmployee {
		return nil, util.ErrPermissionDenied
	}

	maxScore := in.MaxScore
	if maxScore == 0 {
		maxScore = 100
	}

	assignment := &model.Assignment{
		LessonID:    lesson.ID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		MaxScore:    maxScore,
	}
	if err := s.AssignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// AssignmentDetail 作业详情；学生视角带上自己的提交（若有）
type AssignmentDetail struct {
	Assignment *model.Assignment `json:"assignment"`
	Submission *model.Submission `json:"submission,omitempty"`
}

func (s *AssignmentService) Detail(assignmentID uint, studentID uint) (*AssignmentDetail, error) {
	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}

	detail := &AssignmentDetail{Assignment: assignment}
	if studentID != 0 {
		submission, err := s.SubmissionRepo.FindByAssignmentAndStudent(assignment.ID, studentID)
		if err == nil {
			detail.Submission = submission
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return detail, nil
}

// Submit 每个学生对每个作业只有一次提交机会；重复提交通过唯一索引
// 原子拒绝，返回 ErrAlreadySubmitted，已有提交不受影响
func (s *AssignmentService) Submit(ctx context.Context, assignmentID uint, student *model.StudentProfile, content string, file *multipart.FileHeader) (*model.Submission, error) {
	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}

	submission := &model.Submission{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      content,
		SubmittedAt:  time.Now(),
	}

	if file != nil {
		src, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		// 附件只接受文档类内容；正文文字走 content 字段
		if err := util.ValidateUpload(src, util.AllowedSubmissionTypes); err != nil {
			return nil, err
		}

		key := util.ObjectKey(util.UploadSubmissions, file.Filename)
		url, err := s.Storage.Upload(ctx, key, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		submission.FileURL = url
	}

	created, err := s.SubmissionRepo.Create(submission)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, util.ErrAlreadySubmitted
	}
	return submission, nil
}

// Grades 学生自己的已评分提交
func (s *AssignmentService) Grades(studentID uint) ([]model.Submission, error) {
	return s.SubmissionRepo.ListGradedByStudent(studentID)
}
