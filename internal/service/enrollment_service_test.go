package service

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)
	student := createStudent(t, env.db, "alice")

	enrolled, created, err := env.enrollment.Enroll(student, course.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Go Basics", enrolled.Title)

	// 重复选课不是错误，但不产生第二条记录
	_, created, err = env.enrollment.Enroll(student, course.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	env.db.Model(&model.Enrollment{}).
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollRequiresPublishedCourse(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	draft := createCourse(t, env.db, instructor.ID, category.ID, "Unreleased", false)
	student := createStudent(t, env.db, "alice")

	// 未发布和不存在的课程给出不同的错误
	_, _, err := env.enrollment.Enroll(student, draft.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotPublished)

	_, _, err = env.enrollment.Enroll(student, 9999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	var count int64
	env.db.Model(&model.Enrollment{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestLessonViewRequiresEnrollment(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)
	lesson := createLesson(t, env.db, course.ID, "Intro", 1)
	student := createStudent(t, env.db, "alice")

	_, err := env.lesson.View(lesson.ID, model.RoleStudent, student)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	// 未选课的访问不留下任何进度记录
	var count int64
	env.db.Model(&model.LessonProgress{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// 教师不受选课门槛限制
	view, err := env.lesson.View(lesson.ID, model.RoleInstructor, nil)
	require.NoError(t, err)
	assert.Equal(t, lesson.ID, view.Lesson.ID)
}

func TestLessonViewTracksProgressOnce(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)
	l1 := createLesson(t, env.db, course.ID, "Intro", 1)
	l2 := createLesson(t, env.db, course.ID, "Types", 2)
	l3 := createLesson(t, env.db, course.ID, "Slices", 3)
	student := createStudent(t, env.db, "alice")

	_, created, err := env.enrollment.Enroll(student, course.ID)
	require.NoError(t, err)
	require.True(t, created)

	_, err = env.lesson.View(l1.ID, model.RoleStudent, student)
	require.NoError(t, err)

	var enrollment model.Enrollment
	require.NoError(t, env.db.Where("student_id = ?", student.ID).First(&enrollment).Error)
	assert.Equal(t, 33, enrollment.Progress)
	assert.False(t, enrollment.Completed)

	// 重复浏览同一课时既不加进度也不加记录
	_, err = env.lesson.View(l1.ID, model.RoleStudent, student)
	require.NoError(t, err)

	var progressRows int64
	env.db.Model(&model.LessonProgress{}).
		Where("student_id = ? AND lesson_id = ?", student.ID, l1.ID).
		Count(&progressRows)
	assert.EqualValues(t, 1, progressRows)

	_, err = env.lesson.View(l2.ID, model.RoleStudent, student)
	require.NoError(t, err)
	_, err = env.lesson.View(l3.ID, model.RoleStudent, student)
	require.NoError(t, err)

	require.NoError(t, env.db.Where("student_id = ?", student.ID).First(&enrollment).Error)
	assert.Equal(t, 100, enrollment.Progress)
	assert.True(t, enrollment.Completed)
}
