package repository

import (
	"edu_course_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// CourseFilter 课程列表过滤条件，零值字段表示不限制
type CourseFilter struct {
	CategoryID   uint
	TagID        uint
	InstructorID uint
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Instructor.User").Preload("Category").Preload("Tags").
		First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindPublishedByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Instructor.User").Preload("Category").Preload("Tags").
		Where("published = ?", true).First(&course, id).Error
	return &course, err
}

// ListPublished 仅已发布课程，各过滤条件 AND 叠加
func (r *CourseRepository) ListPublished(filter CourseFilter) ([]model.Course, error) {
	query := r.DB.Model(&model.Course{}).
		Preload("Instructor.User").Preload("Category").Preload("Tags").
		Where("courses.published = ?", true)

	if filter.CategoryID != 0 {
		query = query.Where("courses.category_id = ?", filter.CategoryID)
	}
	if filter.InstructorID != 0 {
		query = query.Where("courses.instructor_id = ?", filter.InstructorID)
	}
	if filter.TagID != 0 {
		query = query.Joins("JOIN course_tags ON course_tags.course_id = courses.id").
			Where("course_tags.tag_id = ?", filter.TagID)
	}

	var courses []model.Course
	err := query.Order("courses.created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListByInstructor(instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Category").Preload("Tags").
		Where("instructor_id = ?", instructorID).
		Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Instructor.User").Preload("Category").
		Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

// LoadStats 填充课程的平均评分（仅统计已通过审核的评价）与课时数
func (r *CourseRepository) LoadStats(courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}

	type ratingRow struct {
		CourseID uint
		Avg      float64
	}
	var ratings []ratingRow
	err := r.DB.Model(&model.Review{}).
		Select("course_id, AVG(rating) AS avg").
		Where("course_id IN ? AND approved = ?", ids, true).
		Group("course_id").Scan(&ratings).Error
	if err != nil {
		return err
	}

	type countRow struct {
		CourseID uint
		Total    int64
	}
	var lessons []countRow
	err = r.DB.Model(&model.Lesson{}).
		Select("course_id, COUNT(*) AS total").
		Where("course_id IN ?", ids).
		Group("course_id").Scan(&lessons).Error
	if err != nil {
		return err
	}

	ratingByCourse := make(map[uint]float64, len(ratings))
	for _, row := range ratings {
		ratingByCourse[row.CourseID] = row.Avg
	}
	lessonsByCourse := make(map[uint]int64, len(lessons))
	for _, row := range lessons {
		lessonsByCourse[row.CourseID] = row.Total
	}

	for i := range courses {
		courses[i].AverageRating = ratingByCourse[courses[i].ID]
		courses[i].TotalLessons = lessonsByCourse[courses[i].ID]
	}
	return nil
}
