// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item offered for sale.
type Product struct {
	ID          uuid.UUID       `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	Name        string          `json:"name"`        // The display name of the product.
	Description string          `json:"description"` // A free-form product description.
	Price       decimal.Decimal `json:"price"`       // The current unit price, fixed-point decimal(10,2).
	ImageURL    string          `json:"image_url"`   // Optional reference to a product image.
	CategoryID  *uuid.UUID      `json:"category_id"` // Optional category; nil when uncategorized or the category was removed.
	Tags        []*Tag          `json:"tags"`        // Tags attached to this product.
	IsDeleted   bool            `json:"is_deleted"`  // Soft-delete flag; hidden from customer-facing listings when true.
	CreatedAt   time.Time       `json:"created_at"`  // Timestamp of when this product was created.
	UpdatedAt   time.Time       `json:"updated_at"`  // Timestamp of the last modification.
}

// Category groups products for browsing. Pure lookup entity with no business rules.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Tag labels products across categories. Pure lookup entity with no business rules.
type Tag struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
