// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product-related database operations.
// Listings apply the catalog's single "visible" predicate (is_deleted = false);
// lookups by ID intentionally do not, so a soft-deleted product remains a valid
// direct target.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID, soft-deleted or not.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindVisibleProducts retrieves non-deleted products, newest first.
	FindVisibleProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error)

	// FindVisibleProductsByCategory retrieves non-deleted products of one category.
	FindVisibleProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error)

	// FindVisibleProductsByTag retrieves non-deleted products carrying one tag.
	FindVisibleProductsByTag(ctx context.Context, tagID uuid.UUID) ([]*entity.Product, error)

	// SoftDeleteProduct marks a product deleted without removing its record.
	SoftDeleteProduct(ctx context.Context, id uuid.UUID) error
}
