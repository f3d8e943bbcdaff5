package model

// Review 课程评价，(course, student) 唯一，须先选课
// swagger:model Review
type Review struct {
	BaseModel
	CourseID  uint           `gorm:"uniqueIndex:idx_review_course_student;not null" json:"courseId"`
	Course    Course         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	StudentID uint           `gorm:"uniqueIndex:idx_review_course_student;not null" json:"studentId"`
	Student   StudentProfile `gorm:"constraint:OnDelete:CASCADE" json:"student"`
	Rating    int            `gorm:"not null" json:"rating"` // 1-5
	Comment   string         `gorm:"type:text" json:"comment"`
	Approved  bool           `gorm:"default:true" json:"approved"`
}
