package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row. IDs are assigned by the store on insert and are
// never reused; deletes remove the row outright.
type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"index;not null"`
	Category      string          `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
