package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item that can be billed on an invoice detail line.
type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	Description   string          `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cost          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitOfMeasure string          `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Product) TableName() string { return "products" }
