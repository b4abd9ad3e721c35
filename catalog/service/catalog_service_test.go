package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// fakeCatalogRepo is an in-memory catalog.Repository keyed by service name.
type fakeCatalogRepo struct {
	byID   map[uuid.UUID]*entity.CommonService
	byName map[string]uuid.UUID
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		byID:   map[uuid.UUID]*entity.CommonService{},
		byName: map[string]uuid.UUID{},
	}
}

func (f *fakeCatalogRepo) Store(_ context.Context, cs *entity.CommonService) error {
	if _, exists := f.byName[cs.Name]; exists {
		return apperr.Conflictf("a service with this name already exists")
	}
	f.byID[cs.ID] = cs
	f.byName[cs.Name] = cs.ID
	return nil
}

func (f *fakeCatalogRepo) Update(_ context.Context, id uuid.UUID, name, description string) (int64, error) {
	cs, ok := f.byID[id]
	if !ok {
		return 0, nil
	}
	if name != "" {
		delete(f.byName, cs.Name)
		cs.Name = name
		f.byName[name] = id
	}
	if description != "" {
		cs.Description = description
	}
	return 1, nil
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CommonService, error) {
	return f.byID[id], nil
}

func (f *fakeCatalogRepo) List(_ context.Context) ([]entity.CommonService, error) {
	out := make([]entity.CommonService, 0, len(f.byID))
	for _, cs := range f.byID {
		out = append(out, *cs)
	}
	return out, nil
}

func TestAddServiceAndList(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogRepo())

	cs, err := svc.AddService(context.Background(), "Oil change", "Full synthetic")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, cs.ID)

	all, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAddServiceDuplicateName(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogRepo())

	_, err := svc.AddService(context.Background(), "Oil change", "Full synthetic")
	require.NoError(t, err)

	_, err = svc.AddService(context.Background(), "Oil change", "Again")
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestAddServiceValidation(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogRepo())
	_, err := svc.AddService(context.Background(), "", "Full synthetic")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUpdateServiceRequiresAField(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogRepo())
	_, err := svc.UpdateService(context.Background(), uuid.New(), "", "")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUpdateServiceUnknownID(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogRepo())
	_, err := svc.UpdateService(context.Background(), uuid.New(), "Brakes", "")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdateServiceRenames(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewCatalogService(repo)

	cs, err := svc.AddService(context.Background(), "Oil change", "Full synthetic")
	require.NoError(t, err)

	updated, err := svc.UpdateService(context.Background(), cs.ID, "Oil and filter change", "")
	require.NoError(t, err)
	assert.Equal(t, "Oil and filter change", updated.Name)
	assert.Equal(t, "Full synthetic", updated.Description)
}
