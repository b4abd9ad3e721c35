package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	catalogpkg "github.com/natenaltsega2225/AbeGarage-Backend/catalog"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// catalogService implements catalog.Service.
type catalogService struct {
	repo catalogpkg.Repository
}

// NewCatalogService constructs a catalog.Service backed by the provided
// repository.
func NewCatalogService(repo catalogpkg.Repository) catalogpkg.Service {
	return &catalogService{repo: repo}
}

func (s *catalogService) AddService(ctx context.Context, name, description string) (*entity.CommonService, error) {
	if name == "" || description == "" {
		return nil, apperr.Validationf("service name and description are required")
	}
	cs := &entity.CommonService{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
	if err := s.repo.Store(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *catalogService) UpdateService(ctx context.Context, id uuid.UUID, name, description string) (*entity.CommonService, error) {
	if name == "" && description == "" {
		return nil, apperr.Validationf("at least one of service name or description is required")
	}
	n, err := s.repo.Update(ctx, id, name, description)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperr.NotFoundf("service not found")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *catalogService) ListServices(ctx context.Context) ([]entity.CommonService, error) {
	return s.repo.List(ctx)
}
