package service

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRequiresEnrollment(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)
	student := createStudent(t, env.db, "alice")

	_, err := env.review.Create(course.ID, student, 5, "great")
	assert.ErrorIs(t, err, util.ErrReviewNeedsEnroll)

	var count int64
	env.db.Model(&model.Review{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestReviewOncePerCourse(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)
	student := createStudent(t, env.db, "alice")

	_, _, err := env.enrollment.Enroll(student, course.ID)
	require.NoError(t, err)

	review, err := env.review.Create(course.ID, student, 5, "great")
	require.NoError(t, err)
	assert.True(t, review.Approved)

	_, err = env.review.Create(course.ID, student, 1, "changed my mind")
	assert.ErrorIs(t, err, util.ErrAlreadyReviewed)

	// 首条评价原样保留
	var stored model.Review
	require.NoError(t, env.db.Where("course_id = ? AND student_id = ?", course.ID, student.ID).
		First(&stored).Error)
	assert.Equal(t, 5, stored.Rating)
	assert.Equal(t, "great", stored.Comment)
}

func TestAverageRatingCountsApprovedOnly(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)

	ratings := []int{5, 5, 4}
	var reviews []model.Review
	for i, rating := range ratings {
		student := createStudent(t, env.db, "student"+string(rune('a'+i)))
		_, _, err := env.enrollment.Enroll(student, course.ID)
		require.NoError(t, err)
		review, err := env.review.Create(course.ID, student, rating, "")
		require.NoError(t, err)
		reviews = append(reviews, *review)
	}

	courses, err := env.catalog.ListCourses(repository.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.InDelta(t, 4.667, courses[0].AverageRating, 0.001)

	// 下架一条 5 分评价后均分只剩 (5+4)/2
	_, err = env.review.Moderate(reviews[0].ID, false)
	require.NoError(t, err)

	courses, err = env.catalog.ListCourses(repository.CourseFilter{})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, courses[0].AverageRating, 0.001)
}

func TestAverageRatingZeroWithoutReviews(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)

	courses, err := env.catalog.ListCourses(repository.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Zero(t, courses[0].AverageRating)
}

func TestModerateUnknownReview(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.review.Moderate(12345, false)
	assert.ErrorIs(t, err, util.ErrReviewNotFound)
}
