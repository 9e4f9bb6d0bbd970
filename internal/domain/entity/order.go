package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderNumberFormat is the layout passed to time.Format when deriving a
// human-readable order number from the creation timestamp.
const OrderNumberFormat = "20060102-150405"

// Order is a persisted, immutable record of a submitted cart.
type Order struct {
	ID              uuid.UUID    `json:"id"`               // The Global Unique Identifier (GUID) for the order.
	Number          string       `json:"number"`           // Unique human-readable number, ORD-YYYYMMDD-HHMMSS.
	DeliveryAddress string       `json:"delivery_address"` // Where the order ships to.
	CustomerPhone   string       `json:"customer_phone"`   // Contact phone supplied at checkout.
	CustomerName    string       `json:"customer_name"`    // Contact name supplied at checkout.
	Items           []*OrderItem `json:"items"`            // One item per distinct cart entry.
	CreatedAt       time.Time    `json:"created_at"`       // Timestamp of when the order was placed.
}

// OrderItem is the join between an Order and a Product. Immutable after creation.
type OrderItem struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	ProductID       uuid.UUID       `json:"product_id"`
	Quantity        int             `json:"quantity"`
	DiscountPerItem decimal.Decimal `json:"discount_per_item"` // always zero in the current flow
}

// NewOrderNumber derives the order number for the given creation time.
// Resolution is to the second; the unique constraint on the column is the
// backstop for two orders landing in the same second.
func NewOrderNumber(at time.Time) string {
	return "ORD-" + at.Format(OrderNumberFormat)
}
