package service

import (
	"context"
	"edu_course_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCoursesOnlyPublished(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	createCourse(t, env.db, instructor.ID, category.ID, "Published Course", true)
	createCourse(t, env.db, instructor.ID, category.ID, "Draft Course", false)

	courses, err := env.catalog.ListCourses(repository.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Published Course", courses[0].Title)
}

func TestListCoursesFiltersCombineWithAnd(t *testing.T) {
	env := newTestEnv(t)
	teacher1 := createInstructor(t, env.db, "teacher1")
	teacher2 := createInstructor(t, env.db, "teacher2")
	programming := createCategory(t, env.db, "Programming")
	design := createCategory(t, env.db, "Design")
	beginner := createTag(t, env.db, "beginner")
	advanced := createTag(t, env.db, "advanced")

	goCourse := createCourse(t, env.db, teacher1.ID, programming.ID, "Go Basics", true)
	require.NoError(t, env.db.Model(goCourse).Association("Tags").Append(beginner))

	rustCourse := createCourse(t, env.db, teacher1.ID, programming.ID, "Advanced Rust", true)
	require.NoError(t, env.db.Model(rustCourse).Association("Tags").Append(advanced))

	figmaCourse := createCourse(t, env.db, teacher2.ID, design.ID, "Figma Basics", true)
	require.NoError(t, env.db.Model(figmaCourse).Association("Tags").Append(beginner))

	// 单条件
	courses, err := env.catalog.ListCourses(repository.CourseFilter{CategoryID: programming.ID})
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	courses, err = env.catalog.ListCourses(repository.CourseFilter{TagID: beginner.ID})
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	// 条件 AND 叠加
	courses, err = env.catalog.ListCourses(repository.CourseFilter{
		CategoryID: programming.ID,
		TagID:      beginner.ID,
	})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Basics", courses[0].Title)

	courses, err = env.catalog.ListCourses(repository.CourseFilter{
		CategoryID:   programming.ID,
		TagID:        beginner.ID,
		InstructorID: teacher2.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestListCoursesLoadsLessonCount(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)
	createLesson(t, env.db, course.ID, "Intro", 1)
	createLesson(t, env.db, course.ID, "Types", 2)

	courses, err := env.catalog.ListCourses(repository.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.EqualValues(t, 2, courses[0].TotalLessons)
}

func TestCatalogDictionaries(t *testing.T) {
	env := newTestEnv(t)
	createCategory(t, env.db, "Programming")
	createCategory(t, env.db, "Design")
	createTag(t, env.db, "beginner")
	createInstructor(t, env.db, "teacher1")

	categories, err := env.catalog.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	tags, err := env.catalog.Tags(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	instructors, err := env.catalog.Instructors(context.Background())
	require.NoError(t, err)
	assert.Len(t, instructors, 1)
}
