package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// Service exposes operations on the common-services catalog.
type Service interface {
	AddService(ctx context.Context, name, description string) (*entity.CommonService, error)
	UpdateService(ctx context.Context, id uuid.UUID, name, description string) (*entity.CommonService, error)
	ListServices(ctx context.Context) ([]entity.CommonService, error)
}
