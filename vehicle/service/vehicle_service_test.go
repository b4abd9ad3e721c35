package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	customerpkg "github.com/natenaltsega2225/AbeGarage-Backend/customer"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
	vehiclepkg "github.com/natenaltsega2225/AbeGarage-Backend/vehicle"
)

// fakeVehicleRepo is an in-memory vehicle.Repository.
type fakeVehicleRepo struct {
	byID map[uuid.UUID]*entity.CustomerVehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{byID: map[uuid.UUID]*entity.CustomerVehicle{}}
}

func (f *fakeVehicleRepo) Store(_ context.Context, v *entity.CustomerVehicle) (*entity.CustomerVehicle, error) {
	f.byID[v.ID] = v
	return v, nil
}

func (f *fakeVehicleRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.CustomerVehicle, error) {
	out := []entity.CustomerVehicle{}
	for _, v := range f.byID {
		if v.CustomerID == customerID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CustomerVehicle, error) {
	return f.byID[id], nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, v *entity.CustomerVehicle) (int64, error) {
	existing, ok := f.byID[v.ID]
	if !ok {
		return 0, nil
	}
	v.CustomerID = existing.CustomerID
	f.byID[v.ID] = v
	return 1, nil
}

// hashResolver satisfies just enough of customer.Repository for vehicle tests.
type hashResolver struct {
	customerpkg.Repository
	known map[string]uuid.UUID
}

func (r *hashResolver) ResolveHash(_ context.Context, hash string) (uuid.UUID, error) {
	return r.known[hash], nil
}

func vehicleFixtures() (*fakeVehicleRepo, *hashResolver, uuid.UUID) {
	repo := newFakeVehicleRepo()
	customerID := uuid.New()
	customers := &hashResolver{known: map[string]uuid.UUID{"abc123": customerID}}
	return repo, customers, customerID
}

func TestAddVehicleSuccess(t *testing.T) {
	repo, customers, customerID := vehicleFixtures()
	svc := NewVehicleService(repo, customers)

	v, err := svc.AddVehicle(context.Background(), vehiclepkg.AddVehicleRequest{
		CustomerHash: "abc123",
		Year:         2019,
		Make:         "Toyota",
		Model:        "Corolla",
		Mileage:      42000,
	})
	require.NoError(t, err)
	assert.Equal(t, customerID, v.CustomerID)
	assert.NotEqual(t, uuid.Nil, v.ID)
}

func TestAddVehicleUnknownCustomer(t *testing.T) {
	repo, customers, _ := vehicleFixtures()
	svc := NewVehicleService(repo, customers)

	_, err := svc.AddVehicle(context.Background(), vehiclepkg.AddVehicleRequest{
		CustomerHash: "unknown",
		Year:         2019,
		Make:         "Toyota",
		Model:        "Corolla",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestAddVehicleValidation(t *testing.T) {
	repo, customers, _ := vehicleFixtures()
	svc := NewVehicleService(repo, customers)

	_, err := svc.AddVehicle(context.Background(), vehiclepkg.AddVehicleRequest{CustomerHash: "abc123"})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestListForCustomer(t *testing.T) {
	repo, customers, _ := vehicleFixtures()
	svc := NewVehicleService(repo, customers)

	_, err := svc.AddVehicle(context.Background(), vehiclepkg.AddVehicleRequest{
		CustomerHash: "abc123", Year: 2019, Make: "Toyota", Model: "Corolla",
	})
	require.NoError(t, err)

	vehicles, err := svc.ListForCustomer(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)

	_, err = svc.ListForCustomer(context.Background(), "unknown")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdateVehicleReplacesAttributes(t *testing.T) {
	repo, customers, customerID := vehicleFixtures()
	svc := NewVehicleService(repo, customers)

	v, err := svc.AddVehicle(context.Background(), vehiclepkg.AddVehicleRequest{
		CustomerHash: "abc123", Year: 2019, Make: "Toyota", Model: "Corolla", Color: "blue",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateVehicle(context.Background(), v.ID, vehiclepkg.UpdateVehicleRequest{
		Year: 2019, Make: "Toyota", Model: "Corolla", Color: "red", Mileage: 50000,
	})
	require.NoError(t, err)
	assert.Equal(t, "red", updated.Color)
	assert.Equal(t, 50000, updated.Mileage)
	assert.Equal(t, customerID, updated.CustomerID)
}

func TestUpdateVehicleUnknownID(t *testing.T) {
	repo, customers, _ := vehicleFixtures()
	svc := NewVehicleService(repo, customers)

	_, err := svc.UpdateVehicle(context.Background(), uuid.New(), vehiclepkg.UpdateVehicleRequest{
		Year: 2019, Make: "Toyota", Model: "Corolla",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
