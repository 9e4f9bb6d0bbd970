package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The Number column carries a unique constraint; the second-resolution
// numbering scheme relies on it to reject concurrent duplicates.
type OrderModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Number          string            `gorm:"type:varchar(32);not null;uniqueIndex"`
	DeliveryAddress string            `gorm:"type:text;not null"`
	CustomerPhone   string            `gorm:"type:varchar(20);not null"`
	CustomerName    string            `gorm:"type:varchar(100);not null"`
	Items           []*OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// ProductID references products without cascade so sold items survive
// catalog soft-deletes.
type OrderItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        int             `gorm:"not null"`
	DiscountPerItem decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
