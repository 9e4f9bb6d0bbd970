// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when an order number collides with an
	// existing one (two orders created within the same second).
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderRepository defines the interface for order-related database operations.
// Orders are created exactly once and never updated or deleted by this core.
type OrderRepository interface {
	// CreateOrder persists an order together with all of its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order and its items by the order's unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
