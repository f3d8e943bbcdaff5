package util

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ValidateMimeType 深度校验文件 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "image/", "video/", "application/pdf"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// ValidateUpload 深度校验上传文件的真实内容类型，校验后把读取指针拨回起点，
// 调用方可以直接继续读文件内容
func ValidateUpload(src multipart.File, allowedTypes []string) error {
	mimeType, err := ValidateMimeType(src, allowedTypes)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFileType, mimeType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	return nil
}

// ObjectKey 生成带命名空间的存储对象键，保留原始扩展名
func ObjectKey(namespace, originalName string) string {
	return namespace + "/" + uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
}
