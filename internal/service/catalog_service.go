package service

import (
	"context"
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/repository"
	"edu_course_backend/pkg/logger"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cacheKeyCategories  = "catalog:categories"
	cacheKeyTags        = "catalog:tags"
	cacheKeyInstructors = "catalog:instructors"
	catalogCacheTTL     = 10 * time.Minute
)

// CatalogService 课程目录：已发布课程列表的过滤查询和过滤字典
type CatalogService struct {
	CourseRepo  *repository.CourseRepository
	CatalogRepo *repository.CatalogRepository
	Redis       *redis.Client
}

func NewCatalogService(courseRepo *repository.CourseRepository, catalogRepo *repository.CatalogRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		CourseRepo:  courseRepo,
		CatalogRepo: catalogRepo,
		Redis:       rdb,
	}
}

// ListCourses 仅返回已发布课程；category/tag/instructor 过滤条件为 AND 组合，
// 未传的条件不参与过滤
func (s *CatalogService) ListCourses(filter repository.CourseFilter) ([]model.Course, error) {
	courses, err := s.CourseRepo.ListPublished(filter)
	if err != nil {
		return nil, err
	}
	if err := s.CourseRepo.LoadStats(courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if s.cacheGet(ctx, cacheKeyCategories, &categories) {
		return categories, nil
	}

	categories, err := s.CatalogRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyCategories, categories)
	return categories, nil
}

func (s *CatalogService) Tags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if s.cacheGet(ctx, cacheKeyTags, &tags) {
		return tags, nil
	}

	tags, err := s.CatalogRepo.ListTags()
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyTags, tags)
	return tags, nil
}

func (s *CatalogService) Instructors(ctx context.Context) ([]model.InstructorProfile, error) {
	var instructors []model.InstructorProfile
	if s.cacheGet(ctx, cacheKeyInstructors, &instructors) {
		return instructors, nil
	}

	instructors, err := s.CatalogRepo.ListInstructors()
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyInstructors, instructors)
	return instructors, nil
}

// InvalidateDictionaries 课程创建后清空过滤字典缓存
func (s *CatalogService) InvalidateDictionaries(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(ctx, cacheKeyCategories, cacheKeyTags, cacheKeyInstructors)
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.Redis == nil {
		return false
	}
	val, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logger.Log.Warn("catalog cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.Redis.Set(ctx, key, data, catalogCacheTTL)
}
