package database

import (
	"edu_course_backend/internal/config"
	"edu_course_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCatalog(db)

	return db, nil
}

// Migrate 建表并创建唯一索引；选课/提交/评价/课时进度的唯一约束
// 必须落在存储层，幂等写入依赖于此
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.InstructorProfile{},
		&model.EmployeeProfile{},
		&model.Category{},
		&model.Tag{},
		&model.Course{},
		&model.Lesson{},
		&model.Enrollment{},
		&model.Assignment{},
		&model.Submission{},
		&model.Review{},
		&model.LessonProgress{},
	)
}

// 默认的课程分类与标签
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count == 0 {
		defaultCategories := []model.Category{
			{Name: "Programming", Description: "Software development and coding"},
			{Name: "Design", Description: "UI/UX and graphic design"},
			{Name: "Business", Description: "Management, marketing and finance"},
			{Name: "Language", Description: "Foreign language learning"},
		}
		for _, c := range defaultCategories {
			db.Create(&c)
		}
	}

	var tagCount int64
	db.Model(&model.Tag{}).Count(&tagCount)
	if tagCount == 0 {
		defaultTags := []model.Tag{
			{Name: "beginner"},
			{Name: "intermediate"},
			{Name: "advanced"},
			{Name: "certification"},
		}
		for _, t := range defaultTags {
			db.Create(&t)
		}
	}
}
