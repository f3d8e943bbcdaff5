package repository

import (
	"edu_course_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Enroll 原子化的 get-or-create：依赖 (student_id, course_id) 唯一索引，
// 冲突时不写入。并发的重复请求最多只会产生一行。
// 返回值 created 表示本次调用是否新建了选课记录。
func (r *EnrollmentRepository) Enroll(studentID, courseID uint) (bool, error) {
	enrollment := model.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(&enrollment)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *EnrollmentRepository) Find(studentID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) ListByStudent(studentID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Course.Category").Preload("Course.Instructor.User").
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) UpdateProgress(id uint, progress int, completed bool) error {
	return r.DB.Model(&model.Enrollment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"progress":  progress,
			"completed": completed,
		}).Error
}

func (r *EnrollmentRepository) CountByInstructor(instructorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) ListRecent(limit int) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Student.User").Preload("Course").
		Order("enrolled_at DESC").Limit(limit).Find(&enrollments).Error
	return enrollments, err
}
