package service

import (
	"context"
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 最小可被内容嗅探识别的 mp4 头（ftyp box, brand mp41）
var mp4Stub = []byte{0, 0, 0, 16, 'f', 't', 'y', 'p', 'm', 'p', '4', '1', 0, 0, 0, 0}

func TestCreateLessonValidatesPDFContent(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)

	in := CreateLessonInput{Title: "Intro", Order: 1}

	// 伪装成 PDF 的文本被拒收，课时不入库
	fake := uploadHeader(t, "slides.pdf", []byte("<html>not a pdf</html>"))
	_, err := env.lesson.Create(context.Background(), course.ID, model.RoleInstructor, instructor.ID, in, nil, fake)
	assert.ErrorIs(t, err, util.ErrInvalidFileType)

	var count int64
	env.db.Model(&model.Lesson{}).Count(&count)
	assert.EqualValues(t, 0, count)

	pdf := uploadHeader(t, "slides.pdf", []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"))
	lesson, err := env.lesson.Create(context.Background(), course.ID, model.RoleInstructor, instructor.ID, in, nil, pdf)
	require.NoError(t, err)
	assert.NotEmpty(t, lesson.PDFFileURL)
}

func TestCreateLessonValidatesVideoContent(t *testing.T) {
	env := newTestEnv(t)
	instructor := createInstructor(t, env.db, "teacher1")
	category := createCategory(t, env.db, "Programming")
	course := createCourse(t, env.db, instructor.ID, category.ID, "Go Basics", true)

	in := CreateLessonInput{Title: "Intro", Order: 1}

	fake := uploadHeader(t, "lecture.mp4", []byte("plain text is not a video"))
	_, err := env.lesson.Create(context.Background(), course.ID, model.RoleInstructor, instructor.ID, in, fake, nil)
	assert.ErrorIs(t, err, util.ErrInvalidFileType)

	// 内容嗅探为 video/mp4 即通过；元数据探测失败不阻塞上传
	video := uploadHeader(t, "lecture.mp4", mp4Stub)
	lesson, err := env.lesson.Create(context.Background(), course.ID, model.RoleInstructor, instructor.ID, in, video, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, lesson.VideoFileURL)
}
