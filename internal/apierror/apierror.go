// Package apierror holds the JSON bodies returned for 4xx/5xx responses.
// Every body carries a human-readable "detail"; driver messages never reach it.
package apierror

// APIError is the {"detail": "..."} body.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// NotFound reports a missing row, e.g. "Product not found".
func NotFound(entity string) *APIError {
	return New(entity + " not found")
}

// Conflict reports a duplicate value on a unique column.
func Conflict(entity string) *APIError {
	return New(entity + " conflicts with an existing record")
}

// Reference reports a write to a missing row, or a delete of a row that is
// still referenced.
func Reference(entity string) *APIError {
	return New(entity + " references a missing record or is still referenced")
}

// Internal is the only body ever sent with a 500.
func Internal() *APIError {
	return New("internal server error")
}

// ValidationError lists the rejected fields by JSON name, with the rule each
// one broke.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Fields: fields}
}

// FieldError is a ValidationError for a single field.
func FieldError(field, rule string) *ValidationError {
	return NewValidation(map[string]string{field: rule})
}
