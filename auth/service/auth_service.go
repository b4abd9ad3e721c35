package service

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	authpkg "github.com/natenaltsega2225/AbeGarage-Backend/auth"
	employeepkg "github.com/natenaltsega2225/AbeGarage-Backend/employee"
)

const accessTokenTTL = 24 * time.Hour

// authService implements auth.Service on top of the employee repository.
type authService struct {
	employees employeepkg.Repository
}

func NewAuthService(employees employeepkg.Repository) authpkg.Service {
	return &authService{employees: employees}
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	emp, err := s.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	// Same error for unknown email, wrong password and deactivated account,
	// so callers cannot probe which emails exist.
	if emp == nil || !emp.Active {
		return nil, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	principal := &authpkg.Principal{
		EmployeeID: emp.ID.String(),
		Email:      emp.Email,
		FirstName:  emp.FirstName,
		Role:       string(emp.Role),
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change-me"
	}
	token, err := authpkg.SignJWT(secret, principal, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	principal.Token = token
	return principal, nil
}
