package model

import "time"

// 每个用户有且只有一个与 Role 对应的档案记录，注册时在同一事务中创建

// swagger:model StudentProfile
type StudentProfile struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex;not null" json:"userId"`
	User        User       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Phone       string     `gorm:"size:15" json:"phone"`
	Bio         string     `gorm:"type:text" json:"bio"`
}

// swagger:model InstructorProfile
type InstructorProfile struct {
	BaseModel
	UserID          uint   `gorm:"uniqueIndex;not null" json:"userId"`
	User            User   `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	Bio             string `gorm:"type:text" json:"bio"`
	Expertise       string `gorm:"size:200" json:"expertise"`
	YearsExperience int    `gorm:"default:0" json:"yearsExperience"`
}

// swagger:model EmployeeProfile
type EmployeeProfile struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex;not null" json:"userId"`
	User       User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Department string `gorm:"size:100" json:"department"`
	Position   string `gorm:"size:100" json:"position"`
}

func (p *StudentProfile) SetUserID(id uint)    { p.UserID = id }
func (p *InstructorProfile) SetUserID(id uint) { p.UserID = id }
func (p *EmployeeProfile) SetUserID(id uint)   { p.UserID = id }
