package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey(UploadLessonVideos, "My Lecture.MP4")
	assert.True(t, strings.HasPrefix(key, "lesson_videos/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))

	// 同名文件也不会撞键
	other := ObjectKey(UploadLessonVideos, "My Lecture.MP4")
	assert.NotEqual(t, key, other)

	// 无扩展名
	key = ObjectKey(UploadSubmissions, "answer")
	assert.Equal(t, "submissions/", key[:len("submissions/")])
	assert.False(t, strings.Contains(key[len("submissions/"):], "."))
}

func TestValidateMimeType(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake document body")
	mime, err := ValidateMimeType(bytes.NewReader(pdf), []string{MimePDF})
	require.NoError(t, err)
	assert.Equal(t, MimePDF, mime)

	// 文本冒充 PDF 会被内容嗅探拒绝
	_, err = ValidateMimeType(strings.NewReader("just plain text"), []string{MimePDF})
	assert.Error(t, err)

	// 前缀匹配
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	_, err = ValidateMimeType(bytes.NewReader(png), []string{MimeImage})
	assert.NoError(t, err)
}

func TestMustParseUint(t *testing.T) {
	assert.EqualValues(t, 42, MustParseUint("42"))
	assert.EqualValues(t, 0, MustParseUint("not-a-number"))
	assert.EqualValues(t, 0, MustParseUint("-1"))
}
