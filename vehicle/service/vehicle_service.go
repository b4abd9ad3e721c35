package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	customerpkg "github.com/natenaltsega2225/AbeGarage-Backend/customer"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
	vehiclepkg "github.com/natenaltsega2225/AbeGarage-Backend/vehicle"
)

// vehicleService implements vehicle.Service.
type vehicleService struct {
	repo      vehiclepkg.Repository
	customers customerpkg.Repository
}

// NewVehicleService constructs a vehicle.Service backed by the provided
// repositories.
func NewVehicleService(repo vehiclepkg.Repository, customers customerpkg.Repository) vehiclepkg.Service {
	return &vehicleService{repo: repo, customers: customers}
}

func (s *vehicleService) AddVehicle(ctx context.Context, req vehiclepkg.AddVehicleRequest) (*entity.CustomerVehicle, error) {
	if req.CustomerHash == "" {
		return nil, apperr.Validationf("customer_hash is required")
	}
	if req.Make == "" || req.Model == "" || req.Year == 0 {
		return nil, apperr.Validationf("vehicle year, make and model are required")
	}

	customerID, err := s.customers.ResolveHash(ctx, req.CustomerHash)
	if err != nil {
		return nil, err
	}
	if customerID == uuid.Nil {
		return nil, apperr.NotFoundf("customer not found")
	}

	v := &entity.CustomerVehicle{
		ID:         uuid.New(),
		CustomerID: customerID,
		Year:       req.Year,
		Make:       req.Make,
		Model:      req.Model,
		Type:       req.Type,
		Mileage:    req.Mileage,
		Tag:        req.Tag,
		Serial:     req.Serial,
		Color:      req.Color,
	}
	return s.repo.Store(ctx, v)
}

func (s *vehicleService) ListForCustomer(ctx context.Context, customerHash string) ([]entity.CustomerVehicle, error) {
	customerID, err := s.customers.ResolveHash(ctx, customerHash)
	if err != nil {
		return nil, err
	}
	if customerID == uuid.Nil {
		return nil, apperr.NotFoundf("customer not found")
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*entity.CustomerVehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFoundf("vehicle not found")
	}
	return v, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id uuid.UUID, req vehiclepkg.UpdateVehicleRequest) (*entity.CustomerVehicle, error) {
	if req.Make == "" || req.Model == "" || req.Year == 0 {
		return nil, apperr.Validationf("vehicle year, make and model are required")
	}

	v := &entity.CustomerVehicle{
		ID:      id,
		Year:    req.Year,
		Make:    req.Make,
		Model:   req.Model,
		Type:    req.Type,
		Mileage: req.Mileage,
		Tag:     req.Tag,
		Serial:  req.Serial,
		Color:   req.Color,
	}
	n, err := s.repo.Update(ctx, v)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperr.NotFoundf("vehicle not found")
	}
	return s.repo.GetByID(ctx, id)
}
