package vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// Repository specifies vehicle related database operations. Absence is
// reported as a nil vehicle, not an error.
type Repository interface {
	Store(ctx context.Context, v *entity.CustomerVehicle) (*entity.CustomerVehicle, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerVehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerVehicle, error)
	// Update replaces the mutable columns and reports rows affected.
	Update(ctx context.Context, v *entity.CustomerVehicle) (int64, error)
}
