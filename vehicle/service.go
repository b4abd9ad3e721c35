package vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// AddVehicleRequest carries the data required to attach a vehicle to a
// customer, addressed by hash.
type AddVehicleRequest struct {
	CustomerHash string
	Year         int
	Make         string
	Model        string
	Type         string
	Mileage      int
	Tag          string
	Serial       string
	Color        string
}

// UpdateVehicleRequest replaces the mutable vehicle attributes.
type UpdateVehicleRequest struct {
	Year    int
	Make    string
	Model   string
	Type    string
	Mileage int
	Tag     string
	Serial  string
	Color   string
}

// Service exposes vehicle-related business operations.
type Service interface {
	AddVehicle(ctx context.Context, req AddVehicleRequest) (*entity.CustomerVehicle, error)
	ListForCustomer(ctx context.Context, customerHash string) ([]entity.CustomerVehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*entity.CustomerVehicle, error)
	UpdateVehicle(ctx context.Context, id uuid.UUID, req UpdateVehicleRequest) (*entity.CustomerVehicle, error)
}
