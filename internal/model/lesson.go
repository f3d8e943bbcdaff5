package model

// Lesson 课时，按 (order, created_at) 升序展示
// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID      uint    `gorm:"index;not null" json:"courseId"`
	Course        Course  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title         string  `gorm:"size:200;not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	VideoURL      string  `gorm:"size:255" json:"videoUrl"` // 外部视频链接 (YouTube 等)
	VideoFileURL  string  `gorm:"size:255" json:"videoFileUrl"`
	PDFFileURL    string  `gorm:"size:255" json:"pdfFileUrl"`
	VideoDuration float64 `gorm:"default:0" json:"videoDuration"` // 秒，上传时 ffprobe 解析
	Order         int     `gorm:"column:sort_order;default:0" json:"order"`
}
