package repository

import (
	"edu_course_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.Preload("Lesson.Course").First(&assignment, id).Error
	return &assignment, err
}

func (r *AssignmentRepository) ListByLesson(lessonID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("lesson_id = ?", lessonID).
		Order("due_date ASC").Find(&assignments).Error
	return assignments, err
}

// ListUpcomingForStudent 学生所选课程中尚未到期的作业，按截止时间升序
func (r *AssignmentRepository) ListUpcomingForStudent(studentID uint, now time.Time, limit int) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Preload("Lesson.Course").
		Joins("JOIN lessons ON lessons.id = assignments.lesson_id").
		Joins("JOIN enrollments ON enrollments.course_id = lessons.course_id").
		Where("enrollments.student_id = ? AND assignments.due_date >= ?", studentID, now).
		Order("assignments.due_date ASC").Limit(limit).
		Find(&assignments).Error
	return assignments, err
}
