package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreatePersonRequest struct {
	Name         string `json:"name"          validate:"required,max=120"`
	Surname      string `json:"surname"       validate:"required,max=120"`
	DocumentType string `json:"document_type" validate:"required,max=20"`
	Document     string `json:"document"      validate:"required,max=40"`
}

// UpdatePersonRequest is a partial update: nil fields are left untouched.
type UpdatePersonRequest struct {
	Name         *string `json:"name"          validate:"omitempty,max=120"`
	Surname      *string `json:"surname"       validate:"omitempty,max=120"`
	DocumentType *string `json:"document_type" validate:"omitempty,max=20"`
	Document     *string `json:"document"      validate:"omitempty,max=40"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type PersonResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	DocumentType string `json:"document_type"`
	Document     string `json:"document"`
}
