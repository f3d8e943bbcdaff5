package repository

import (
	"edu_course_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// Create 依赖 (course_id, student_id) 唯一索引，重复评价不落库。
// created 为 false 表示该学生已评价过此课程。
func (r *ReviewRepository) Create(review *model.Review) (bool, error) {
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}, {Name: "student_id"}},
		DoNothing: true,
	}).Create(review)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ReviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	err := r.DB.First(&review, id).Error
	return &review, err
}

func (r *ReviewRepository) Exists(courseID, studentID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Review{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) ListApprovedByCourse(courseID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.DB.Preload("Student.User").
		Where("course_id = ? AND approved = ?", courseID, true).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) SetApproved(id uint, approved bool) error {
	return r.DB.Model(&model.Review{}).Where("id = ?", id).
		Update("approved", approved).Error
}
