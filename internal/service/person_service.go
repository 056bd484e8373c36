package service

import (
	"context"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/model"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/repository"
)

// PersonService defines operations for persons.
type PersonService interface {
	Create(ctx context.Context, req dto.CreatePersonRequest) (*dto.PersonResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PersonResponse, error)
	List(ctx context.Context, q dto.ListQuery) ([]dto.PersonResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdatePersonRequest) (*dto.PersonResponse, error)
	Delete(ctx context.Context, id uint) error
}

type personService struct {
	repo repository.PersonRepository
}

func NewPersonService(repo repository.PersonRepository) PersonService {
	return &personService{repo: repo}
}

func mapPerson(p model.Person) dto.PersonResponse {
	return dto.PersonResponse{
		ID:           p.ID,
		Name:         p.Name,
		Surname:      p.Surname,
		DocumentType: p.DocumentType,
		Document:     p.Document,
	}
}

func (s *personService) Create(ctx context.Context, req dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	p := &model.Person{
		Name:         req.Name,
		Surname:      req.Surname,
		DocumentType: req.DocumentType,
		Document:     req.Document,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapPerson(*p)
	return &resp, nil
}

func (s *personService) GetByID(ctx context.Context, id uint) (*dto.PersonResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapPerson(*p)
	return &resp, nil
}

func (s *personService) List(ctx context.Context, q dto.ListQuery) ([]dto.PersonResponse, error) {
	list, err := s.repo.List(ctx, toPage(q))
	if err != nil {
		return nil, err
	}
	result := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPerson(p))
	}
	return result, nil
}

func (s *personService) Update(ctx context.Context, id uint, req dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	changes := repository.Changes{}
	if req.Name != nil {
		changes.Set("name", *req.Name)
	}
	if req.Surname != nil {
		changes.Set("surname", *req.Surname)
	}
	if req.DocumentType != nil {
		changes.Set("document_type", *req.DocumentType)
	}
	if req.Document != nil {
		changes.Set("document", *req.Document)
	}

	p, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	resp := mapPerson(*p)
	return &resp, nil
}

func (s *personService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
