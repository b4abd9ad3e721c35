package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	catalogpkg "github.com/natenaltsega2225/AbeGarage-Backend/catalog"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// GormCatalogRepo implements catalog.Repository using GORM.
type GormCatalogRepo struct {
	db *gorm.DB
}

func NewGormCatalogRepo(db *gorm.DB) catalogpkg.Repository {
	return &GormCatalogRepo{db: db}
}

func (r *GormCatalogRepo) Store(ctx context.Context, cs *entity.CommonService) error {
	if err := r.db.WithContext(ctx).Create(cs).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("a service with this name already exists")
		}
		return apperr.Persistencef(err, "store catalog service")
	}
	return nil
}

func (r *GormCatalogRepo) Update(ctx context.Context, id uuid.UUID, name, description string) (int64, error) {
	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&entity.CommonService{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, apperr.Conflictf("a service with this name already exists")
		}
		return 0, apperr.Persistencef(res.Error, "update catalog service")
	}
	return res.RowsAffected, nil
}

func (r *GormCatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CommonService, error) {
	var cs entity.CommonService
	if err := r.db.WithContext(ctx).First(&cs, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Persistencef(err, "get catalog service")
	}
	return &cs, nil
}

func (r *GormCatalogRepo) List(ctx context.Context) ([]entity.CommonService, error) {
	var services []entity.CommonService
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error; err != nil {
		return nil, apperr.Persistencef(err, "list catalog services")
	}
	return services, nil
}
