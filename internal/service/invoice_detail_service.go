package service

import (
	"context"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/repository"
)

// InvoiceDetailService defines operations for invoice detail lines.
type InvoiceDetailService interface {
	Create(ctx context.Context, req dto.CreateInvoiceDetailRequest) (*dto.InvoiceDetailResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.InvoiceDetailResponse, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.InvoiceDetailResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateInvoiceDetailRequest) (*dto.InvoiceDetailResponse, error)
	Delete(ctx context.Context, id uint) error
}

type invoiceDetailService struct {
	repo repository.InvoiceDetailRepository
}

func NewInvoiceDetailService(repo repository.InvoiceDetailRepository) InvoiceDetailService {
	return &invoiceDetailService{repo: repo}
}

func mapInvoiceDetail(d model.InvoiceDetail) dto.InvoiceDetailResponse {
	return dto.InvoiceDetailResponse{
		ID:              d.ID,
		InvoiceHeaderID: d.InvoiceHeaderID,
		ProductID:       d.ProductID,
		Quantity:        d.Quantity,
	}
}

func (s *invoiceDetailService) Create(ctx context.Context, req dto.CreateInvoiceDetailRequest) (*dto.InvoiceDetailResponse, error) {
	d := &model.InvoiceDetail{
		InvoiceHeaderID: req.InvoiceHeaderID,
		ProductID:       req.ProductID,
	}
	if req.Quantity != nil {
		d.Quantity = *req.Quantity
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := mapInvoiceDetail(*d)
	return &resp, nil
}

func (s *invoiceDetailService) GetByID(ctx context.Context, id uint) (*dto.InvoiceDetailResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapInvoiceDetail(*d)
	return &resp, nil
}

func (s *invoiceDetailService) List(ctx context.Context, q dto.ListQuery) ([]dto.InvoiceDetailResponse, error) {
	list, err := s.repo.List(ctx, toPage(q))
	if err != nil {
		return nil, err
	}
	result := make([]dto.InvoiceDetailResponse, 0, len(list))
	for _, d := range list {
		result = append(result, mapInvoiceDetail(d))
	}
	return result, nil
}

func (s *invoiceDetailService) Update(ctx context.Context, id uint, req dto.UpdateInvoiceDetailRequest) (*dto.InvoiceDetailResponse, error) {
	changes := repository.Changes{}
	if req.InvoiceHeaderID != nil {
		changes.Set("invoice_header_id", *req.InvoiceHeaderID)
	}
	if req.ProductID != nil {
		changes.Set("product_id", *req.ProductID)
	}
	if req.Quantity != nil {
		changes.Set("quantity", *req.Quantity)
	}

	d, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	resp := mapInvoiceDetail(*d)
	return &resp, nil
}

func (s *invoiceDetailService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
