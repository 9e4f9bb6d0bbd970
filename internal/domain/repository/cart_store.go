// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartStore defines the contract for the session-scoped cart. One cart exists
// per session key; its lifetime is bounded by the store's TTL or an explicit
// Clear. Entries survive only in the session store, never in the database.
type CartStore interface {
	// AddItem increments the quantity for productID by one, creating the entry
	// with the given unit-price snapshot when absent. It returns the cart's new
	// total item count (sum of quantities).
	AddItem(ctx context.Context, sessionID, productID string, price decimal.Decimal) (int, error)

	// RemoveItem deletes the entry for productID. Removing an absent product is
	// a no-op, not an error.
	RemoveItem(ctx context.Context, sessionID, productID string) error

	// Entries returns every stored entry of the session's cart. An expired or
	// never-written cart yields an empty slice.
	Entries(ctx context.Context, sessionID string) ([]entity.CartEntry, error)

	// Clear removes the session's cart entirely.
	Clear(ctx context.Context, sessionID string) error
}
