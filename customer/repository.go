package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// Repository specifies customer related database operations. Implementations
// translate storage-level failures into apperr values: duplicate-key hits
// become Conflict, everything else Persistence. Absence is reported through
// zero values (nil record, uuid.Nil), not errors.
type Repository interface {
	// IdentityExists reports whether an identifier matching either the
	// email or the phone already exists. Advisory pre-check only; the
	// unique constraints remain the final guard.
	IdentityExists(ctx context.Context, email, phone string) (bool, error)
	// CreateCustomer inserts the identifier and its profile in one
	// transaction. Either both rows exist afterwards or neither does.
	CreateCustomer(ctx context.Context, ident *entity.CustomerIdentifier, info *entity.CustomerInfo) error
	// GetByHash returns the identifier⋈info view for the hash, or nil when
	// no such customer exists.
	GetByHash(ctx context.Context, hash string) (*Record, error)
	ListAll(ctx context.Context) ([]Record, error)
	// ResolveHash maps a hash to the surrogate id, uuid.Nil when unknown.
	ResolveHash(ctx context.Context, hash string) (uuid.UUID, error)
	// UpdateIdentifierPhone and UpdateInfoNames report the number of rows
	// affected so zero-row outcomes can be surfaced to the caller.
	UpdateIdentifierPhone(ctx context.Context, id uuid.UUID, phone string) (int64, error)
	UpdateInfoNames(ctx context.Context, id uuid.UUID, firstName, lastName string) (int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (int64, error)
}
