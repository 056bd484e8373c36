package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceDetail is a single line of an invoice: a quantity of one product.
type InvoiceDetail struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"`
	InvoiceHeaderID uint            `gorm:"index;not null"`
	ProductID       uint            `gorm:"index;not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (InvoiceDetail) TableName() string { return "invoice_details" }
