package model

import "time"

// LessonProgress 课时完成记录，(student, lesson) 唯一，首次浏览时原子创建
// swagger:model LessonProgress
type LessonProgress struct {
	BaseModel
	StudentID   uint           `gorm:"uniqueIndex:idx_progress_student_lesson;not null" json:"studentId"`
	Student     StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	LessonID    uint           `gorm:"uniqueIndex:idx_progress_student_lesson;not null" json:"lessonId"`
	Lesson      Lesson         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Completed   bool           `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time     `json:"completedAt"`
}
