package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Rows are never hard-deleted; IsDeleted hides a product from listings
// while keeping it resolvable by ID for carts and historical orders.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ImageURL    string          `gorm:"type:varchar(512)"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Tags        []*TagModel     `gorm:"many2many:product_tags;"`
	IsDeleted   bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
