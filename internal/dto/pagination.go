package dto

import "github.com/shopspring/decimal"

func init() {
	// Monetary values and quantities travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ListQuery is the offset pagination accepted by every collection endpoint.
type ListQuery struct {
	Skip  int `form:"skip,default=0"    validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=1,max=1000"`
}
