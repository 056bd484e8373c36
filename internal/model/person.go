package model

import "time"

// Person is a customer invoices are issued to.
// (DocumentType, Document) identifies the real-world person but is not unique in the store.
type Person struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	Surname      string `gorm:"not null"`
	DocumentType string `gorm:"not null"`
	Document     string `gorm:"index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName keeps the singular table name used by the existing schema.
func (Person) TableName() string { return "person" }
