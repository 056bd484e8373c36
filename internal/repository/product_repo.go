package repository

import (
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines CRUD operations for Product.
type ProductRepository interface {
	Repository[model.Product]
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return newCRUDRepository[model.Product](db, nil)
}
