package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authpkg "github.com/natenaltsega2225/AbeGarage-Backend/auth"
	employeepkg "github.com/natenaltsega2225/AbeGarage-Backend/employee"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// emailLookup satisfies just enough of employee.Repository for login tests.
type emailLookup struct {
	employeepkg.Repository
	byEmail map[string]*entity.Employee
}

func (r *emailLookup) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	return r.byEmail[email], nil
}

func loginFixture(t *testing.T, active bool) *emailLookup {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return &emailLookup{byEmail: map[string]*entity.Employee{
		"admin@abegarage.com": {
			ID:           uuid.New(),
			Email:        "admin@abegarage.com",
			FirstName:    "Abe",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Active:       active,
		},
	}}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(loginFixture(t, true))

	principal, err := svc.Login(context.Background(), authpkg.LoginRequest{
		Email:    "admin@abegarage.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@abegarage.com", principal.Email)
	assert.Equal(t, "admin", principal.Role)
	assert.NotEmpty(t, principal.Token)

	claims, err := authpkg.ParseAndValidate("dev-insecure-secret-change-me", principal.Token)
	require.NoError(t, err)
	assert.Equal(t, principal.EmployeeID, claims.EmployeeID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := NewAuthService(loginFixture(t, true))
	inactiveSvc := NewAuthService(loginFixture(t, false))

	_, wrongPassword := svc.Login(context.Background(), authpkg.LoginRequest{
		Email:    "admin@abegarage.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), authpkg.LoginRequest{
		Email:    "nobody@abegarage.com",
		Password: "s3cret",
	})
	_, deactivated := inactiveSvc.Login(context.Background(), authpkg.LoginRequest{
		Email:    "admin@abegarage.com",
		Password: "s3cret",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	require.Error(t, deactivated)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, wrongPassword.Error(), deactivated.Error())
}

func TestLoginMissingCredentials(t *testing.T) {
	svc := NewAuthService(loginFixture(t, true))
	_, err := svc.Login(context.Background(), authpkg.LoginRequest{Email: "admin@abegarage.com"})
	assert.Error(t, err)
}
