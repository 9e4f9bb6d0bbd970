// Package usecase defines the application's use-case interfaces and their
// request/response DTOs.
package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries the admin form for adding a product.
type CreateProductInput struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Description string      `json:"description"`
	Price       string      `json:"price" validate:"required"` // decimal string, e.g. "10.00"
	ImageURL    string      `json:"image_url"`
	CategoryID  *uuid.UUID  `json:"category_id"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
}

// CreateCategoryInput carries the admin form for adding a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// CatalogUsecase exposes the browsing and simple CRUD surface of the catalog.
// All customer-facing listings exclude soft-deleted products; lookup by ID
// does not, so a soft-deleted product can still be fetched directly.
type CatalogUsecase interface {
	// ListProducts returns the visible products for one page.
	ListProducts(ctx context.Context, page int) ([]*entity.Product, error)

	// GetProduct returns a product by ID regardless of its soft-delete flag.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct validates and persists a new product.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// DeleteProduct soft-deletes a product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListCategoryProducts returns the visible products of one category.
	ListCategoryProducts(ctx context.Context, categoryID uuid.UUID) (*entity.Category, []*entity.Product, error)

	// CreateCategory validates and persists a new category.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// ListTags returns every tag.
	ListTags(ctx context.Context) ([]*entity.Tag, error)

	// ListTagProducts returns the visible products carrying one tag.
	ListTagProducts(ctx context.Context, tagID uuid.UUID) (*entity.Tag, []*entity.Product, error)
}
