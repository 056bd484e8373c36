package repository

import (
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"

	"gorm.io/gorm"
)

// PersonRepository defines CRUD operations for Person.
type PersonRepository interface {
	Repository[model.Person]
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return newCRUDRepository[model.Person](db, nil)
}
