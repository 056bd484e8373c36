package service

import (
	"context"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/repository"
)

// ProductService defines operations for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Description:   p.Description,
		Price:         p.Price,
		Cost:          p.Cost,
		UnitOfMeasure: p.UnitOfMeasure,
	}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Description:   req.Description,
		UnitOfMeasure: req.UnitOfMeasure,
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, q dto.ListQuery) ([]dto.ProductResponse, error) {
	list, err := s.repo.List(ctx, toPage(q))
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	changes := repository.Changes{}
	if req.Description != nil {
		changes.Set("description", *req.Description)
	}
	if req.Price != nil {
		changes.Set("price", *req.Price)
	}
	if req.Cost != nil {
		changes.Set("cost", *req.Cost)
	}
	if req.UnitOfMeasure != nil {
		changes.Set("unit_of_measure", *req.UnitOfMeasure)
	}

	p, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
