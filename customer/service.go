package customer

import (
	"context"
	"time"
)

// Record is the merged external view of a customer aggregate: identifier
// fields plus profile fields, keyed by the derived hash. The surrogate id
// never leaves the service.
type Record struct {
	Hash      string    `json:"customer_hash"`
	Email     string    `json:"customer_email"`
	Phone     string    `json:"customer_phone_number"`
	FirstName string    `json:"customer_first_name"`
	LastName  string    `json:"customer_last_name"`
	Active    bool      `json:"active_customer_status"`
	CreatedAt time.Time `json:"customer_added_date"`
}

// RegisterCustomerRequest carries the data required to register a customer.
// Active defaults to true when nil.
type RegisterCustomerRequest struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Active    *bool
}

// UpdateCustomerRequest carries a partial update; empty fields are left
// untouched. At least one field must be set.
type UpdateCustomerRequest struct {
	Phone     string
	FirstName string
	LastName  string
}

// Service exposes customer-related business operations.
type Service interface {
	RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*Record, error)
	GetCustomerByHash(ctx context.Context, hash string) (*Record, error)
	ListCustomers(ctx context.Context) ([]Record, error)
	// UpdateCustomer applies the partial update. The returned slice names
	// the tables whose update affected zero rows, so callers can detect a
	// half-applied update.
	UpdateCustomer(ctx context.Context, hash string, req UpdateCustomerRequest) (*Record, []string, error)
	DeactivateCustomer(ctx context.Context, hash string) error
}
