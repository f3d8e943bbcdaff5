package repository

import (
	"edu_course_backend/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CatalogRepository) FindCategoryByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

func (r *CatalogRepository) ListTags() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *CatalogRepository) FindTagsByIDs(ids []uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *CatalogRepository) ListInstructors() ([]model.InstructorProfile, error) {
	var instructors []model.InstructorProfile
	err := r.DB.Preload("User").Find(&instructors).Error
	return instructors, err
}
