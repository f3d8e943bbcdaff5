package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeVideo       = "video/"
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

// AllowedSubmissionTypes 作业附件允许的内容类型。docx 等 ooxml
// 文档在内容嗅探下呈现为 zip
var AllowedSubmissionTypes = []string{
	MimePDF,
	MimeImage,
	"application/zip",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// 上传对象键的命名空间
const (
	UploadCourseImages = "course_images"
	UploadLessonVideos = "lesson_videos"
	UploadLessonPDFs   = "lesson_pdfs"
	UploadSubmissions  = "submissions"
)
