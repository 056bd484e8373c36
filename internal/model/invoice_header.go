package model

import (
	"time"

	"gorm.io/datatypes"
)

// InvoiceHeader is the head of an invoice. It owns its detail lines: deleting a
// header removes them, while the referenced Person cannot be deleted while
// any header points at it.
type InvoiceHeader struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	Number    int64          `gorm:"uniqueIndex;not null"`
	Date      datatypes.Date `gorm:"not null"`
	PersonID  uint           `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Person  *Person         `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Details []InvoiceDetail `gorm:"foreignKey:InvoiceHeaderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (InvoiceHeader) TableName() string { return "invoice_headers" }
