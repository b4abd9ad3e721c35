package employee

import (
	"context"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// RegisterEmployeeRequest carries the data required to register an employee.
// Role defaults to entity.RoleEmployee when empty.
type RegisterEmployeeRequest struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Password  string
	Role      entity.EmployeeRole
}

// UpdateEmployeeRequest carries a partial update; empty fields are left
// untouched.
type UpdateEmployeeRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Role      entity.EmployeeRole
	Active    *bool
}

// Service exposes employee-related business operations.
type Service interface {
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (*entity.Employee, error)
	ListEmployees(ctx context.Context) ([]entity.Employee, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}
