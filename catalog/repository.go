package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// Repository specifies catalog database operations. Store reports a
// duplicate service name as Conflict; the unique index on the name column is
// the authoritative guard.
type Repository interface {
	Store(ctx context.Context, cs *entity.CommonService) error
	Update(ctx context.Context, id uuid.UUID, name, description string) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CommonService, error)
	List(ctx context.Context) ([]entity.CommonService, error)
}
