package repository

import (
	"edu_course_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// MarkViewed 首次浏览即标记完成，(student_id, lesson_id) 唯一索引保证
// 重复浏览不产生第二行也不改动首次记录的时间戳
func (r *ProgressRepository) MarkViewed(studentID, lessonID uint) (bool, error) {
	now := time.Now()
	progress := model.LessonProgress{
		StudentID:   studentID,
		LessonID:    lessonID,
		Completed:   true,
		CompletedAt: &now,
	}
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "lesson_id"}},
		DoNothing: true,
	}).Create(&progress)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ProgressRepository) Find(studentID, lessonID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := r.DB.Where("student_id = ? AND lesson_id = ?", studentID, lessonID).
		First(&progress).Error
	return &progress, err
}

// CountCompletedForCourse 学生在某课程内已完成的课时数
func (r *ProgressRepository) CountCompletedForCourse(studentID, courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.student_id = ? AND lessons.course_id = ? AND lesson_progresses.completed = ?",
			studentID, courseID, true).
		Count(&count).Error
	return count, err
}
