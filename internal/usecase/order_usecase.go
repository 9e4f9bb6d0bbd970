package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput carries the order form submitted with a non-empty cart.
// Field limits mirror the storage schema.
type CheckoutInput struct {
	DeliveryAddress string `json:"delivery_address" form:"delivery_address" validate:"required"`
	CustomerPhone   string `json:"customer_phone" form:"customer_phone" validate:"required,max=20"`
	CustomerName    string `json:"customer_name" form:"customer_name" validate:"required,max=100"`
}

// OrderUsecase materializes session carts into persisted orders.
type OrderUsecase interface {
	// Checkout validates the form, persists the order with one item per cart
	// entry inside a single transaction, and clears the cart on success.
	Checkout(ctx context.Context, sessionID string, input *CheckoutInput) (*entity.Order, error)

	// GetOrder returns a persisted order for the confirmation page.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
