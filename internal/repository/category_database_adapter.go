package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

const categoryColumns = `id "id", type "type"`

type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories ordered by id
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.Category
	if err := exec.SelectContext(ctx, &rows, "SELECT "+categoryColumns+" FROM categories ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = convertToDomainCategory(&rows[i])
	}
	return categories, nil
}

func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.getOne(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
}

func (r *CategoryDatabaseAdapter) GetCategoryByType(ctx context.Context, label string) (*domain.Category, error) {
	return r.getOne(ctx, "SELECT "+categoryColumns+" FROM categories WHERE type = ?", label)
}

func (r *CategoryDatabaseAdapter) getOne(ctx context.Context, query string, arg interface{}) (*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)
	var row models.Category
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %v: %w", arg, err)
	}
	return convertToDomainCategory(&row), nil
}

// SaveCategory persists a new category and stores the generated id on it
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}
	exec := GetExecutor(ctx, r.db)
	id, err := insertReturningID(ctx, exec, "INSERT INTO categories (type) VALUES (?)", category.Type)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	category.ID = id
	return nil
}

func convertToDomainCategory(c *models.Category) *domain.Category {
	return &domain.Category{ID: c.ID, Type: c.Type}
}
