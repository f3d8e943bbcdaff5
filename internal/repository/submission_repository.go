package repository

import (
	"edu_course_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Create 依赖 (assignment_id, student_id) 唯一索引做原子去重，
// 重复提交不会覆盖已有记录。created 为 false 表示该学生已提交过。
func (r *SubmissionRepository) Create(submission *model.Submission) (bool, error) {
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assignment_id"}, {Name: "student_id"}},
		DoNothing: true,
	}).Create(submission)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.DB.Preload("Assignment.Lesson.Course").Preload("Student.User").
		First(&submission, id).Error
	return &submission, err
}

func (r *SubmissionRepository) FindByAssignmentAndStudent(assignmentID, studentID uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&submission).Error
	return &submission, err
}

// ListPendingByInstructor 指定教师名下课程的未评分提交
func (r *SubmissionRepository) ListPendingByInstructor(instructorID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Preload("Assignment.Lesson.Course").Preload("Student.User").
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Joins("JOIN lessons ON lessons.id = assignments.lesson_id").
		Joins("JOIN courses ON courses.id = lessons.course_id").
		Where("courses.instructor_id = ? AND submissions.graded = ?", instructorID, false).
		Order("submissions.submitted_at ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) CountPendingByInstructor(instructorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Joins("JOIN lessons ON lessons.id = assignments.lesson_id").
		Joins("JOIN courses ON courses.id = lessons.course_id").
		Where("courses.instructor_id = ? AND submissions.graded = ?", instructorID, false).
		Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) ListGradedByStudent(studentID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.Preload("Assignment.Lesson.Course").
		Where("student_id = ? AND graded = ?", studentID, true).
		Order("updated_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// UpdateGrade 只更新评分相关字段，提交内容保持不变；允许重新评分
func (r *SubmissionRepository) UpdateGrade(id uint, score int, feedback string) error {
	return r.DB.Model(&model.Submission{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"score":    score,
			"feedback": feedback,
			"graded":   true,
		}).Error
}
