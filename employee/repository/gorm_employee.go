package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	employeepkg "github.com/natenaltsega2225/AbeGarage-Backend/employee"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// GormEmployeeRepo implements employee.Repository using GORM.
type GormEmployeeRepo struct {
	db *gorm.DB
}

func NewGormEmployeeRepo(db *gorm.DB) employeepkg.Repository {
	return &GormEmployeeRepo{db: db}
}

func (r *GormEmployeeRepo) Store(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("an employee with this email already exists")
		}
		return nil, apperr.Persistencef(err, "store employee")
	}
	return e, nil
}

func (r *GormEmployeeRepo) List(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&employees).Error; err != nil {
		return nil, apperr.Persistencef(err, "list employees")
	}
	return employees, nil
}

func (r *GormEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Persistencef(err, "get employee")
	}
	return &e, nil
}

func (r *GormEmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.db.WithContext(ctx).First(&e, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Persistencef(err, "get employee by email")
	}
	return &e, nil
}

func (r *GormEmployeeRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&entity.Employee{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return 0, apperr.Persistencef(res.Error, "update employee")
	}
	return res.RowsAffected, nil
}

func (r *GormEmployeeRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Employee{}, "id = ?", id)
	if res.Error != nil {
		return 0, apperr.Persistencef(res.Error, "delete employee")
	}
	return res.RowsAffected, nil
}
