package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CategoryService defines the interface for category operations
type CategoryService interface {
	// ListCategories returns every category ordered by id
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	// GetCategory returns nil, nil when the id is unknown. Ids missing from
	// the cached list are checked against the store.
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	InvalidateCache(ctx context.Context)
}

type cachedCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type categoryService struct {
	repo  domain.CategoryRepository
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewCategoryService creates a category service. cache may be nil, in which
// case every call reads the store.
func NewCategoryService(repo domain.CategoryRepository, cache domain.Cache, ttl time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: cache, ttl: ttl}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	key := cache.CategoryListKey()

	if categories, ok := s.readCache(ctx, key); ok {
		return categories, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		categories, err := s.repo.GetAllCategories(ctx)
		if err != nil {
			return nil, err
		}
		s.writeCache(ctx, key, categories)
		return categories, nil
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to list categories", err)
	}
	return v.([]*domain.Category), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}

	// The cached list may predate the category.
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get category", err)
	}
	if category != nil {
		s.InvalidateCache(ctx)
	}
	return category, nil
}

func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryLabels(categories),
	}, nil
}

// InvalidateCache drops the cached category list. Failures are logged only;
// the entry expires on its own.
func (s *categoryService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.CategoryListKey()); err != nil {
		logger.Get().Warn("CategoryService: failed to invalidate category cache", zap.Error(err))
	}
}

func (s *categoryService) readCache(ctx context.Context, key string) ([]*domain.Category, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("CategoryService: cache read failed", zap.String("key", key), zap.Error(err))
		}
		metrics.CategoryCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	var cached []cachedCategory
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		logger.Get().Warn("CategoryService: discarding malformed cache entry", zap.String("key", key), zap.Error(err))
		metrics.CategoryCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CategoryCacheLookups.WithLabelValues("hit").Inc()
	categories := make([]*domain.Category, len(cached))
	for i, c := range cached {
		categories[i] = &domain.Category{ID: c.ID, Type: c.Type}
	}
	return categories, true
}

func (s *categoryService) writeCache(ctx context.Context, key string, categories []*domain.Category) {
	if s.cache == nil {
		return
	}

	cached := make([]cachedCategory, len(categories))
	for i, c := range categories {
		cached[i] = cachedCategory{ID: c.ID, Type: c.Type}
	}
	payload, err := json.Marshal(cached)
	if err != nil {
		logger.Get().Warn("CategoryService: failed to encode categories for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
		logger.Get().Warn("CategoryService: cache write failed", zap.String("key", key), zap.Error(err))
	}
}
