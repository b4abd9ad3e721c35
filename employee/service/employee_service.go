package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	employeepkg "github.com/natenaltsega2225/AbeGarage-Backend/employee"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// employeeService implements employee.Service.
type employeeService struct {
	repo employeepkg.Repository
}

// NewEmployeeService constructs an employee.Service backed by the provided
// repository.
func NewEmployeeService(repo employeepkg.Repository) employeepkg.Service {
	return &employeeService{repo: repo}
}

func validRole(role entity.EmployeeRole) bool {
	switch role {
	case entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin:
		return true
	}
	return false
}

func (s *employeeService) RegisterEmployee(ctx context.Context, req employeepkg.RegisterEmployeeRequest) (*entity.Employee, error) {
	if req.Email == "" || req.FirstName == "" || req.LastName == "" || req.Password == "" {
		return nil, apperr.Validationf("email, first name, last name and password are required")
	}
	role := req.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !validRole(role) {
		return nil, apperr.Validationf("unknown company role %q", role)
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflictf("an employee with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Persistencef(err, "hash employee password")
	}

	e := &entity.Employee{
		ID:           uuid.New(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	return s.repo.Store(ctx, e)
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.repo.List(ctx)
}

func (s *employeeService) GetByUUID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFoundf("employee not found")
	}
	return e, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, req employeepkg.UpdateEmployeeRequest) (*entity.Employee, error) {
	updates := map[string]any{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Role != "" {
		if !validRole(req.Role) {
			return nil, apperr.Validationf("unknown company role %q", req.Role)
		}
		updates["role"] = req.Role
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		return nil, apperr.Validationf("no fields to update")
	}

	n, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperr.NotFoundf("employee not found")
	}
	return s.GetByUUID(ctx, id)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFoundf("employee not found")
	}
	return nil
}
