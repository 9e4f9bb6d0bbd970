package entity

import (
	"github.com/shopspring/decimal"
)

// CartEntry is the session-scoped record of one selected product.
// The price snapshot is captured at add time; cart totals deliberately use
// the live product price instead (see CartLine), matching the storefront's
// documented behaviour.
type CartEntry struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // unit price snapshot at add time
}

// CartLine is one row of the rendered cart: a stored entry joined against
// the live product record.
type CartLine struct {
	Product   *Product        `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"` // quantity x live unit price
}

// CartView is the rendered cart with its grand total.
type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// ItemCount returns the sum of quantities across all lines.
func (v *CartView) ItemCount() int {
	count := 0
	for _, line := range v.Lines {
		count += line.Quantity
	}

	return count
}
