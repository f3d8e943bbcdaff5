package model

import "time"

// Enrollment 选课记录，(student, course) 唯一
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID  uint           `gorm:"uniqueIndex:idx_enrollment_student_course;not null" json:"studentId"`
	Student    StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"student"`
	CourseID   uint           `gorm:"uniqueIndex:idx_enrollment_student_course;not null" json:"courseId"`
	Course     Course         `gorm:"constraint:OnDelete:CASCADE" json:"course"`
	EnrolledAt time.Time      `json:"enrolledAt"`
	Completed  bool           `gorm:"default:false" json:"completed"`
	Progress   int            `gorm:"default:0" json:"progress"` // 0-100
}
