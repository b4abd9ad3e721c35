package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
	vehiclepkg "github.com/natenaltsega2225/AbeGarage-Backend/vehicle"
)

// GormVehicleRepo implements vehicle.Repository using GORM.
type GormVehicleRepo struct {
	db *gorm.DB
}

func NewGormVehicleRepo(db *gorm.DB) vehiclepkg.Repository {
	return &GormVehicleRepo{db: db}
}

func (r *GormVehicleRepo) Store(ctx context.Context, v *entity.CustomerVehicle) (*entity.CustomerVehicle, error) {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return nil, apperr.Persistencef(err, "store vehicle")
	}
	return v, nil
}

func (r *GormVehicleRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerVehicle, error) {
	var vehicles []entity.CustomerVehicle
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&vehicles).Error; err != nil {
		return nil, apperr.Persistencef(err, "list customer vehicles")
	}
	return vehicles, nil
}

func (r *GormVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerVehicle, error) {
	var v entity.CustomerVehicle
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Persistencef(err, "get vehicle")
	}
	return &v, nil
}

func (r *GormVehicleRepo) Update(ctx context.Context, v *entity.CustomerVehicle) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.CustomerVehicle{}).
		Where("id = ?", v.ID).
		Updates(map[string]any{
			"year":    v.Year,
			"make":    v.Make,
			"model":   v.Model,
			"type":    v.Type,
			"mileage": v.Mileage,
			"tag":     v.Tag,
			"serial":  v.Serial,
			"color":   v.Color,
		})
	if res.Error != nil {
		return 0, apperr.Persistencef(res.Error, "update vehicle")
	}
	return res.RowsAffected, nil
}
