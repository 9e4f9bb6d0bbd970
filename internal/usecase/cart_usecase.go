package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartOutput reports the result of an add-to-cart operation.
type AddToCartOutput struct {
	CartTotal   int    `json:"cart_total"` // sum of quantities across the whole cart
	ProductName string `json:"product_name"`
}

// CartUsecase manages the visitor's session-scoped cart.
type CartUsecase interface {
	// AddToCart adds one unit of the product to the session's cart, creating
	// the entry with a price snapshot on first add.
	AddToCart(ctx context.Context, sessionID string, productID uuid.UUID) (*AddToCartOutput, error)

	// RemoveFromCart drops the product's entry; absent products are a no-op.
	RemoveFromCart(ctx context.Context, sessionID string, productID uuid.UUID) error

	// ViewCart joins the stored entries against live product data. Line totals
	// and the grand total use the live price, not the stored snapshot.
	ViewCart(ctx context.Context, sessionID string) (*entity.CartView, error)

	// ClearCart removes every entry of the session's cart.
	ClearCart(ctx context.Context, sessionID string) error
}
