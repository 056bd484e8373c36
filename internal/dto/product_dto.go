package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Description   string           `json:"description"     validate:"required,max=255"`
	Price         *decimal.Decimal `json:"price"           validate:"required,min=0,max_digits=10,max_scale=2"`
	Cost          *decimal.Decimal `json:"cost"            validate:"required,min=0,max_digits=10,max_scale=2"`
	UnitOfMeasure string           `json:"unit_of_measure" validate:"required,max=20"`
}

type UpdateProductRequest struct {
	Description   *string          `json:"description"     validate:"omitempty,max=255"`
	Price         *decimal.Decimal `json:"price"           validate:"omitempty,min=0,max_digits=10,max_scale=2"`
	Cost          *decimal.Decimal `json:"cost"            validate:"omitempty,min=0,max_digits=10,max_scale=2"`
	UnitOfMeasure *string          `json:"unit_of_measure" validate:"omitempty,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            uint            `json:"id"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	UnitOfMeasure string          `json:"unit_of_measure"`
}
