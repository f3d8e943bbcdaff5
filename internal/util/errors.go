package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrUsernameTaken       = errors.New("该用户名已被注册")
	ErrCourseNotFound      = errors.New("course not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrPermissionDenied    = errors.New("Access denied")
	ErrNotEnrolled         = errors.New("You must be enrolled in this course to view lessons")
	ErrReviewNeedsEnroll   = errors.New("You must be enrolled in this course to write a review")
	ErrAlreadySubmitted    = errors.New("You have already submitted this assignment")
	ErrAlreadyReviewed     = errors.New("You have already reviewed this course")
	ErrNotOwnCourse        = errors.New("You can only add lessons to your own courses")
	ErrNotOwnLesson        = errors.New("You can only add assignments to your own lessons")
	ErrCourseNotPublished  = errors.New("This course is not open for enrollment")
	ErrScoreOutOfRange     = errors.New("score must be between 0 and 100")
	ErrMissingRoleProfile  = errors.New("user has no role profile")
	ErrInvalidFileType     = errors.New("unsupported file content")
)
