package service

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"time"
)

type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
	}
}

type StudentDashboard struct {
	Enrollments         []model.Enrollment `json:"enrollments"`
	UpcomingAssignments []model.Assignment `json:"upcomingAssignments"`
}

type InstructorDashboard struct {
	Courses            []model.Course `json:"courses"`
	TotalStudents      int64          `json:"totalStudents"`
	PendingSubmissions int64          `json:"pendingSubmissions"`
}

type EmployeeDashboard struct {
	TotalUsers        int64              `json:"totalUsers"`
	TotalCourses      int64              `json:"totalCourses"`
	TotalEnrollments  int64              `json:"totalEnrollments"`
	RecentEnrollments []model.Enrollment `json:"recentEnrollments"`
}

func (s *DashboardService) ForStudent(studentID uint) (*StudentDashboard, error) {
	enrollments, err := s.EnrollmentRepo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.AssignmentRepo.ListUpcomingForStudent(studentID, time.Now(), 5)
	if err != nil {
		return nil, err
	}

	return &StudentDashboard{
		Enrollments:         enrollments,
		UpcomingAssignments: upcoming,
	}, nil
}

func (s *DashboardService) ForInstructor(instructorID uint) (*InstructorDashboard, error) {
	courses, err := s.CourseRepo.ListByInstructor(instructorID)
	if err != nil {
		return nil, err
	}
	if err := s.CourseRepo.LoadStats(courses); err != nil {
		return nil, err
	}

	totalStudents, err := s.EnrollmentRepo.CountByInstructor(instructorID)
	if err != nil {
		return nil, err
	}

	pending, err := s.SubmissionRepo.CountPendingByInstructor(instructorID)
	if err != nil {
		return nil, err
	}

	return &InstructorDashboard{
		Courses:            courses,
		TotalStudents:      totalStudents,
		PendingSubmissions: pending,
	}, nil
}

func (s *DashboardService) ForEmployee() (*EmployeeDashboard, error) {
	totalUsers, err := s.UserRepo.CountUsers()
	if err != nil {
		return nil, err
	}

	totalCourses, err := s.CourseRepo.CountAll()
	if err != nil {
		return nil, err
	}

	totalEnrollments, err := s.EnrollmentRepo.CountAll()
	if err != nil {
		return nil, err
	}

	recent, err := s.EnrollmentRepo.ListRecent(10)
	if err != nil {
		return nil, err
	}

	return &EmployeeDashboard{
		TotalUsers:        totalUsers,
		TotalCourses:      totalCourses,
		TotalEnrollments:  totalEnrollments,
		RecentEnrollments: recent,
	}, nil
}
