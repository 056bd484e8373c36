package repository

import (
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"

	"gorm.io/gorm"
)

// InvoiceHeaderRepository defines CRUD operations for InvoiceHeader.
// Every read loads the header's detail lines, ordered by id.
type InvoiceHeaderRepository interface {
	Repository[model.InvoiceHeader]
}

func NewInvoiceHeaderRepository(db *gorm.DB) InvoiceHeaderRepository {
	return newCRUDRepository[model.InvoiceHeader](db, withDetails)
}

func withDetails(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}
