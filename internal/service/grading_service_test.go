package service

import (
	"context"
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeSubmission(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)
	lesson := createLesson(t, env.db, course.ID, "Intro", 1)
	assignment := createAssignment(t, env.db, lesson.ID, "Homework 1")
	student := createStudent(t, env.db, "alice")

	submission, err := env.assignment.Submit(context.Background(), assignment.ID, student, "answer", nil)
	require.NoError(t, err)

	graded, err := env.grading.Grade(submission.ID, instructor.ID, 85, "well done")
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 85, *graded.Score)
	assert.Equal(t, "well done", graded.Feedback)
	assert.True(t, graded.Graded)

	// 评分不改动提交内容
	assert.Equal(t, "answer", graded.Content)

	// 允许重新评分
	regraded, err := env.grading.Grade(submission.ID, instructor.ID, 90, "even better")
	require.NoError(t, err)
	assert.Equal(t, 90, *regraded.Score)
}

func TestGradeDeniedForForeignInstructor(t *testing.T) {
	env := newTestEnv(t)
	owner := createInstructor(t, env.db, "teacher1")
	other := createInstructor(t, env.db, "teacher2")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, owner.ID, category.ID, "Go Basics", true)
	lesson := createLesson(t, env.db, course.ID, "Intro", 1)
	assignment := createAssignment(t, env.db, lesson.ID, "Homework 1")
	student := createStudent(t, env.db, "alice")

	submission, err := env.assignment.Submit(context.Background(), assignment.ID, student, "answer", nil)
	require.NoError(t, err)

	_, err = env.grading.Grade(submission.ID, other.ID, 85, "sneaky")
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// 被拒绝的评分不留下任何痕迹
	var stored model.Submission
	require.NoError(t, env.db.First(&stored, submission.ID).Error)
	assert.Nil(t, stored.Score)
	assert.Empty(t, stored.Feedback)
	assert.False(t, stored.Graded)
}

func TestGradeValidation(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")

	_, err := env.grading.Grade(1, instructor.ID, 101, "")
	assert.ErrorIs(t, err, util.ErrScoreOutOfRange)

	_, err = env.grading.Grade(1, instructor.ID, -1, "")
	assert.ErrorIs(t, err, util.ErrScoreOutOfRange)

	_, err = env.grading.Grade(9999, instructor.ID, 50, "")
	assert.ErrorIs(t, err, util.ErrSubmissionNotFound)
}

func TestPendingSubmissionsScopedToInstructor(t *testing.T) {
	env := newTestEnv(t)
	owner := createInstructor(t, env.db, "teacher1")
	other := createInstructor(t, env.db, "teacher2")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, owner.ID, category.ID, "Go Basics", true)
	lesson := createLesson(t, env.db, course.ID, "Intro", 1)
	assignment := createAssignment(t, env.db, lesson.ID, "Homework 1")
	student := createStudent(t, env.db, "alice")

	submission, err := env.assignment.Submit(context.Background(), assignment.ID, student, "answer", nil)
	require.NoError(t, err)

	pending, err := env.grading.Pending(owner.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, submission.ID, pending[0].ID)

	pending, err = env.grading.Pending(other.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// 评分后移出待办
	_, err = env.grading.Grade(submission.ID, owner.ID, 70, "")
	require.NoError(t, err)

	pending, err = env.grading.Pending(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
