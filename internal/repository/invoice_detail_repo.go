package repository

import (
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"

	"gorm.io/gorm"
)

// InvoiceDetailRepository defines CRUD operations for InvoiceDetail.
type InvoiceDetailRepository interface {
	Repository[model.InvoiceDetail]
}

func NewInvoiceDetailRepository(db *gorm.DB) InvoiceDetailRepository {
	return newCRUDRepository[model.InvoiceDetail](db, nil)
}
