package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	customerpkg "github.com/natenaltsega2225/AbeGarage-Backend/customer"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// customerService implements customer.Service.
type customerService struct {
	repo customerpkg.Repository
}

// NewCustomerService constructs a customer.Service backed by the provided
// repository.
func NewCustomerService(repo customerpkg.Repository) customerpkg.Service {
	return &customerService{repo: repo}
}

// RegisterCustomer validates the payload, runs the advisory uniqueness
// pre-check, derives the identity hash and performs the two-table insert.
// The pre-check only buys a friendlier error; a concurrent create slipping
// past it is caught by the unique constraints and still comes back as
// Conflict.
func (s *customerService) RegisterCustomer(ctx context.Context, req customerpkg.RegisterCustomerRequest) (*customerpkg.Record, error) {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "customer_email")
	}
	if req.Phone == "" {
		missing = append(missing, "customer_phone_number")
	}
	if req.FirstName == "" {
		missing = append(missing, "customer_first_name")
	}
	if req.LastName == "" {
		missing = append(missing, "customer_last_name")
	}
	if len(missing) > 0 {
		return nil, apperr.Validationf("missing required fields: %s", strings.Join(missing, ", "))
	}

	exists, err := s.repo.IdentityExists(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflictf("email or phone number already registered")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	ident := &entity.CustomerIdentifier{
		ID:    uuid.New(),
		Email: req.Email,
		Phone: req.Phone,
		Hash:  customerpkg.DeriveHash(req.Email, req.Phone),
	}
	info := &entity.CustomerInfo{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    active,
	}

	if err := s.repo.CreateCustomer(ctx, ident, info); err != nil {
		return nil, err
	}

	return &customerpkg.Record{
		Hash:      ident.Hash,
		Email:     ident.Email,
		Phone:     ident.Phone,
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Active:    info.Active,
		CreatedAt: ident.CreatedAt,
	}, nil
}

func (s *customerService) GetCustomerByHash(ctx context.Context, hash string) (*customerpkg.Record, error) {
	rec, err := s.repo.GetByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFoundf("customer not found")
	}
	return rec, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]customerpkg.Record, error) {
	return s.repo.ListAll(ctx)
}

// UpdateCustomer applies the phone update to the identifier table and the
// name updates to the info table as separate statements. A statement that
// affects zero rows is recorded in the returned failure list instead of
// being silently ignored.
func (s *customerService) UpdateCustomer(ctx context.Context, hash string, req customerpkg.UpdateCustomerRequest) (*customerpkg.Record, []string, error) {
	if req.Phone == "" && req.FirstName == "" && req.LastName == "" {
		return nil, nil, apperr.Validationf("at least one of phone, first name or last name is required")
	}

	id, err := s.repo.ResolveHash(ctx, hash)
	if err != nil {
		return nil, nil, err
	}
	if id == uuid.Nil {
		return nil, nil, apperr.NotFoundf("customer not found")
	}

	var failures []string
	if req.Phone != "" {
		n, err := s.repo.UpdateIdentifierPhone(ctx, id, req.Phone)
		if err != nil {
			return nil, nil, err
		}
		if n == 0 {
			failures = append(failures, "customer_identifier")
		}
	}
	if req.FirstName != "" || req.LastName != "" {
		n, err := s.repo.UpdateInfoNames(ctx, id, req.FirstName, req.LastName)
		if err != nil {
			return nil, nil, err
		}
		if n == 0 {
			failures = append(failures, "customer_info")
		}
	}

	rec, err := s.repo.GetByHash(ctx, hash)
	if err != nil {
		return nil, failures, err
	}
	return rec, failures, nil
}

func (s *customerService) DeactivateCustomer(ctx context.Context, hash string) error {
	id, err := s.repo.ResolveHash(ctx, hash)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return apperr.NotFoundf("customer not found")
	}
	n, err := s.repo.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.Persistencef(nil, "deactivate affected no rows for an existing customer")
	}
	return nil
}
