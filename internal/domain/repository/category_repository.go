// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for category and tag persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = errors.New("tag not found")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAllCategories retrieves every category, name order.
	FindAllCategories(ctx context.Context) ([]*entity.Category, error)
}

// TagRepository defines the interface for tag-related database operations.
type TagRepository interface {
	// FindTagByID retrieves a tag by its unique ID.
	FindTagByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)

	// FindAllTags retrieves every tag, name order.
	FindAllTags(ctx context.Context) ([]*entity.Tag, error)
}
