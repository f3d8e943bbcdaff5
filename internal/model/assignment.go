package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	LessonID    uint      `gorm:"index;not null" json:"lessonId"`
	Lesson      Lesson    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `json:"dueDate"`
	MaxScore    int       `gorm:"default:100" json:"maxScore"`
}

// Submission 作业提交，(assignment, student) 唯一；内容一经提交不可改，
// 评分字段由课程所属教师更新
// swagger:model Submission
type Submission struct {
	BaseModel
	AssignmentID uint           `gorm:"uniqueIndex:idx_submission_assignment_student;not null" json:"assignmentId"`
	Assignment   Assignment     `gorm:"constraint:OnDelete:CASCADE" json:"assignment"`
	StudentID    uint           `gorm:"uniqueIndex:idx_submission_assignment_student;not null" json:"studentId"`
	Student      StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"student"`
	Content      string         `gorm:"type:text" json:"content"`
	FileURL      string         `gorm:"size:255" json:"fileUrl"`
	SubmittedAt  time.Time      `json:"submittedAt"`
	Score        *int           `json:"score"`
	Feedback     string         `gorm:"type:text" json:"feedback"`
	Graded       bool           `gorm:"default:false" json:"graded"`
}
