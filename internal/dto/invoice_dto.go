package dto

import "github.com/shopspring/decimal"

// DateLayout is the wire format of invoice dates.
const DateLayout = "2006-01-02"

// ─── Invoice header ──────────────────────────────────────────────────────────

type CreateInvoiceHeaderRequest struct {
	Number   *int64 `json:"number"    validate:"required"`
	Date     string `json:"date"      validate:"required,datetime=2006-01-02"`
	PersonID uint   `json:"person_id" validate:"required"`
}

type UpdateInvoiceHeaderRequest struct {
	Number   *int64  `json:"number"`
	Date     *string `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	PersonID *uint   `json:"person_id" validate:"omitempty,gt=0"`
}

type InvoiceHeaderResponse struct {
	ID       uint                    `json:"id"`
	Number   int64                   `json:"number"`
	Date     string                  `json:"date"`
	PersonID uint                    `json:"person_id"`
	Details  []InvoiceDetailResponse `json:"details"`
}

// ─── Invoice detail ──────────────────────────────────────────────────────────

type CreateInvoiceDetailRequest struct {
	InvoiceHeaderID uint             `json:"invoice_header_id" validate:"required"`
	ProductID       uint             `json:"product_id"        validate:"required"`
	Quantity        *decimal.Decimal `json:"quantity"          validate:"required,gt=0,max_digits=9,max_scale=3"`
}

type UpdateInvoiceDetailRequest struct {
	InvoiceHeaderID *uint            `json:"invoice_header_id" validate:"omitempty,gt=0"`
	ProductID       *uint            `json:"product_id"        validate:"omitempty,gt=0"`
	Quantity        *decimal.Decimal `json:"quantity"          validate:"omitempty,gt=0,max_digits=9,max_scale=3"`
}

type InvoiceDetailResponse struct {
	ID              uint            `json:"id"`
	InvoiceHeaderID uint            `json:"invoice_header_id"`
	ProductID       uint            `json:"product_id"`
	Quantity        decimal.Decimal `json:"quantity"`
}
