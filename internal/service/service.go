// Package service holds one thin service per entity. Services delegate to the
// matching repository and translate between DTOs and models; they add no
// business rules and perform no cross-entity checks.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/repository"

	"gorm.io/datatypes"
)

// ErrInvalidInput is returned for input that passed shape validation but
// cannot be converted to a stored value.
var ErrInvalidInput = errors.New("invalid input")

func toPage(q dto.ListQuery) repository.Page {
	return repository.Page{Skip: q.Skip, Limit: q.Limit}
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("%w: date %q must use YYYY-MM-DD", ErrInvalidInput, s)
	}
	return datatypes.Date(t), nil
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dto.DateLayout)
}
