package model

// swagger:model Course
type Course struct {
	BaseModel
	Title        string            `gorm:"size:200;not null" json:"title"`
	Description  string            `gorm:"type:text" json:"description"`
	InstructorID uint              `gorm:"index;not null" json:"instructorId"`
	Instructor   InstructorProfile `gorm:"constraint:OnDelete:CASCADE" json:"instructor"`
	CategoryID   uint              `gorm:"index;not null" json:"categoryId"`
	Category     Category          `gorm:"constraint:OnDelete:CASCADE" json:"category"`
	Tags         []Tag             `gorm:"many2many:course_tags" json:"tags"`
	Price        float64           `gorm:"type:decimal(10,2);default:0" json:"price"`
	ImageURL     string            `gorm:"size:255" json:"imageUrl"`
	Published    bool              `gorm:"default:false" json:"published"`

	// 聚合字段，查询时填充，不落库
	AverageRating float64 `gorm:"-" json:"averageRating"`
	TotalLessons  int64   `gorm:"-" json:"totalLessons"`
}

func (Course) TableName() string {
	return "courses"
}
