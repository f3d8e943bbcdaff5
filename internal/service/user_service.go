package service

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// Profile 用户基本信息加上与其角色对应的档案
type Profile struct {
	User           *model.User              `json:"user"`
	StudentInfo    *model.StudentProfile    `json:"studentInfo,omitempty"`
	InstructorInfo *model.InstructorProfile `json:"instructorInfo,omitempty"`
	EmployeeInfo   *model.EmployeeProfile   `json:"employeeInfo,omitempty"`
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	profile := &Profile{User: user}
	switch user.Role {
	case model.RoleStudent:
		profile.StudentInfo, err = s.UserRepo.FindStudentByUserID(user.ID)
	case model.RoleInstructor:
		profile.InstructorInfo, err = s.UserRepo.FindInstructorByUserID(user.ID)
	case model.RoleEmployee:
		profile.EmployeeInfo, err = s.UserRepo.FindEmployeeByUserID(user.ID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMissingRoleProfile
		}
		return nil, err
	}
	return profile, nil
}

// StudentProfileOf 将 JWT 中的用户 ID 解析为学生档案
func (s *UserService) StudentProfileOf(userID uint) (*model.StudentProfile, error) {
	profile, err := s.UserRepo.FindStudentByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMissingRoleProfile
		}
		return nil, err
	}
	return profile, nil
}

// InstructorProfileOf 将 JWT 中的用户 ID 解析为教师档案
func (s *UserService) InstructorProfileOf(userID uint) (*model.InstructorProfile, error) {
	profile, err := s.UserRepo.FindInstructorByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMissingRoleProfile
		}
		return nil, err
	}
	return profile, nil
}
