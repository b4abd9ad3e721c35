package auth

import (
	"context"
)

// LoginRequest carries employee credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// Principal identifies an authenticated employee.
type Principal struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"employee_email"`
	FirstName  string `json:"employee_first_name"`
	Role       string `json:"company_role"`
	Token      string `json:"token,omitempty"`
}

// Service provides login for shop employees.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Principal, error)
}
