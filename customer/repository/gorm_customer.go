package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	customerpkg "github.com/natenaltsega2225/AbeGarage-Backend/customer"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// GormCustomerRepo implements customer.Repository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.Repository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) IdentityExists(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.CustomerIdentifier{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error; err != nil {
		return false, apperr.Persistencef(err, "check existing identity")
	}
	return count > 0, nil
}

// CreateCustomer inserts the identifier and the profile inside one
// transaction. Each insert must affect exactly one row; anything else rolls
// the whole transaction back so an identifier can never exist without its
// profile. A unique-constraint hit (two creates racing past the pre-check)
// comes back as Conflict, not Persistence.
func (r *GormCustomerRepo) CreateCustomer(ctx context.Context, ident *entity.CustomerIdentifier, info *entity.CustomerInfo) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Create(ident)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return apperr.Persistencef(nil, "customer_identifier insert affected %d rows", res.RowsAffected)
		}

		info.CustomerID = ident.ID
		res = tx.Create(info)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return apperr.Persistencef(nil, "customer_info insert affected %d rows", res.RowsAffected)
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflictf("email or phone number already registered")
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Persistencef(err, "create customer")
}

// customerRow mirrors the columns of the identifier⋈info join.
type customerRow struct {
	Hash      string
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Active    bool
	CreatedAt time.Time
}

func (row customerRow) record() customerpkg.Record {
	return customerpkg.Record{
		Hash:      row.Hash,
		Email:     row.Email,
		Phone:     row.Phone,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
	}
}

const customerJoin = `
SELECT ci.hash, ci.email, ci.phone, ci.created_at,
       i.first_name, i.last_name, i.active
FROM customer_identifiers ci
JOIN customer_infos i ON i.customer_id = ci.id`

func (r *GormCustomerRepo) GetByHash(ctx context.Context, hash string) (*customerpkg.Record, error) {
	var row customerRow
	res := r.db.WithContext(ctx).Raw(customerJoin+" WHERE ci.hash = ?", hash).Scan(&row)
	if res.Error != nil {
		return nil, apperr.Persistencef(res.Error, "get customer by hash")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	rec := row.record()
	return &rec, nil
}

func (r *GormCustomerRepo) ListAll(ctx context.Context) ([]customerpkg.Record, error) {
	var rows []customerRow
	if err := r.db.WithContext(ctx).Raw(customerJoin + " ORDER BY ci.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, apperr.Persistencef(err, "list customers")
	}
	records := make([]customerpkg.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

func (r *GormCustomerRepo) ResolveHash(ctx context.Context, hash string) (uuid.UUID, error) {
	var ident entity.CustomerIdentifier
	err := r.db.WithContext(ctx).Select("id").First(&ident, "hash = ?", hash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, apperr.Persistencef(err, "resolve customer hash")
	}
	return ident.ID, nil
}

func (r *GormCustomerRepo) UpdateIdentifierPhone(ctx context.Context, id uuid.UUID, phone string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.CustomerIdentifier{}).
		Where("id = ?", id).
		Update("phone", phone)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, apperr.Conflictf("phone number already registered")
		}
		return 0, apperr.Persistencef(res.Error, "update customer phone")
	}
	return res.RowsAffected, nil
}

func (r *GormCustomerRepo) UpdateInfoNames(ctx context.Context, id uuid.UUID, firstName, lastName string) (int64, error) {
	updates := map[string]any{}
	if firstName != "" {
		updates["first_name"] = firstName
	}
	if lastName != "" {
		updates["last_name"] = lastName
	}
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&entity.CustomerInfo{}).
		Where("customer_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return 0, apperr.Persistencef(res.Error, "update customer names")
	}
	return res.RowsAffected, nil
}

func (r *GormCustomerRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.CustomerInfo{}).
		Where("customer_id = ?", id).
		Update("active", active)
	if res.Error != nil {
		return 0, apperr.Persistencef(res.Error, "set customer active flag")
	}
	return res.RowsAffected, nil
}
