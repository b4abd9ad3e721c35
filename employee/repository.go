package employee

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// Repository specifies employee related database operations. Absence is
// reported as a nil employee, not an error; a duplicate email surfaces as
// Conflict from Store.
type Repository interface {
	Store(ctx context.Context, e *entity.Employee) (*entity.Employee, error)
	List(ctx context.Context) ([]entity.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
	// Delete soft-deletes the employee and reports rows affected.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
