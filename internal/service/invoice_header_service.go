package service

import (
	"context"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/repository"
)

// InvoiceHeaderService defines operations for invoice headers. Responses embed
// the header's detail lines.
type InvoiceHeaderService interface {
	Create(ctx context.Context, req dto.CreateInvoiceHeaderRequest) (*dto.InvoiceHeaderResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.InvoiceHeaderResponse, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.InvoiceHeaderResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateInvoiceHeaderRequest) (*dto.InvoiceHeaderResponse, error)
	Delete(ctx context.Context, id uint) error
}

type invoiceHeaderService struct {
	repo repository.InvoiceHeaderRepository
}

func NewInvoiceHeaderService(repo repository.InvoiceHeaderRepository) InvoiceHeaderService {
	return &invoiceHeaderService{repo: repo}
}

func mapInvoiceHeader(h model.InvoiceHeader) dto.InvoiceHeaderResponse {
	details := make([]dto.InvoiceDetailResponse, 0, len(h.Details))
	for _, d := range h.Details {
		details = append(details, mapInvoiceDetail(d))
	}
	return dto.InvoiceHeaderResponse{
		ID:       h.ID,
		Number:   h.Number,
		Date:     formatDate(h.Date),
		PersonID: h.PersonID,
		Details:  details,
	}
}

func (s *invoiceHeaderService) Create(ctx context.Context, req dto.CreateInvoiceHeaderRequest) (*dto.InvoiceHeaderResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	h := &model.InvoiceHeader{
		Date:     date,
		PersonID: req.PersonID,
	}
	if req.Number != nil {
		h.Number = *req.Number
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	resp := mapInvoiceHeader(*h)
	return &resp, nil
}

func (s *invoiceHeaderService) GetByID(ctx context.Context, id uint) (*dto.InvoiceHeaderResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapInvoiceHeader(*h)
	return &resp, nil
}

func (s *invoiceHeaderService) List(ctx context.Context, q dto.ListQuery) ([]dto.InvoiceHeaderResponse, error) {
	list, err := s.repo.List(ctx, toPage(q))
	if err != nil {
		return nil, err
	}
	result := make([]dto.InvoiceHeaderResponse, 0, len(list))
	for _, h := range list {
		result = append(result, mapInvoiceHeader(h))
	}
	return result, nil
}

func (s *invoiceHeaderService) Update(ctx context.Context, id uint, req dto.UpdateInvoiceHeaderRequest) (*dto.InvoiceHeaderResponse, error) {
	changes := repository.Changes{}
	if req.Number != nil {
		changes.Set("number", *req.Number)
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		changes.Set("date", date)
	}
	if req.PersonID != nil {
		changes.Set("person_id", *req.PersonID)
	}

	h, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	resp := mapInvoiceHeader(*h)
	return &resp, nil
}

func (s *invoiceHeaderService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
