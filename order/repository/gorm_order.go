package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
	orderpkg "github.com/natenaltsega2225/AbeGarage-Backend/order"
)

// GormOrderRepo implements order.Repository using GORM.
type GormOrderRepo struct {
	db *gorm.DB
}

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository {
	return &GormOrderRepo{db: db}
}

func (r *GormOrderRepo) CreateOrderGraph(ctx context.Context, o *entity.Order, info *entity.OrderInfo, status *entity.OrderStatusEntry, items []entity.OrderServiceItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Create(o)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return apperr.Persistencef(nil, "order insert affected %d rows", res.RowsAffected)
		}

		info.OrderID = o.ID
		res = tx.Create(info)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return apperr.Persistencef(nil, "order_info insert affected %d rows", res.RowsAffected)
		}

		status.OrderID = o.ID
		res = tx.Create(status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return apperr.Persistencef(nil, "order_status insert affected %d rows", res.RowsAffected)
		}

		if len(items) > 0 {
			for i := range items {
				items[i].OrderID = o.ID
			}
			res = tx.Create(&items)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != int64(len(items)) {
				return apperr.Persistencef(nil, "order_service insert affected %d of %d rows", res.RowsAffected, len(items))
			}
		}
		return nil
	})
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Persistencef(err, "create order")
}

// orderListQuery yields one row per order per service item; orders without
// items still produce a single row with NULL item columns. Newest orders
// first; the fold below must preserve that order, not re-sort.
const orderListQuery = `
SELECT o.id AS order_id, o.customer_id, o.employee_id, o.vehicle_id,
       o.description, o.order_date,
       oi.total_price_cents, oi.estimated_completion_date, oi.completion_date,
       oi.additional_request, oi.notes_for_internal_use, oi.notes_for_customer,
       st.status,
       osi.id AS item_id, osi.service_id, osi.completed,
       cs.name AS service_name, cs.description AS service_description
FROM orders o
JOIN order_infos oi ON oi.order_id = o.id
JOIN order_status_entries st ON st.order_id = o.id
LEFT JOIN order_service_items osi ON osi.order_id = o.id
LEFT JOIN common_services cs ON cs.id = osi.service_id
ORDER BY o.order_date DESC, o.id DESC`

// ListOrders streams the join result once and folds it into nested views
// keyed by order id. This is the single-query alternative to issuing a
// per-order sub-query for service items.
func (r *GormOrderRepo) ListOrders(ctx context.Context) ([]orderpkg.View, error) {
	rows, err := r.db.WithContext(ctx).Raw(orderListQuery).Rows()
	if err != nil {
		return nil, apperr.Persistencef(err, "list orders")
	}
	defer rows.Close()

	views := []orderpkg.View{}
	index := map[uuid.UUID]int{}

	for rows.Next() {
		var (
			orderID     uuid.UUID
			customerID  uuid.UUID
			employeeID  uuid.NullUUID
			vehicleID   uuid.NullUUID
			description string
			orderDate   time.Time
			totalCents  int64
			estDate     sql.NullTime
			compDate    sql.NullTime
			addRequest  string
			notesInt    string
			notesCust   string
			status      string
			itemID      uuid.NullUUID
			serviceID   uuid.NullUUID
			completed   sql.NullBool
			svcName     sql.NullString
			svcDesc     sql.NullString
		)
		if err := rows.Scan(
			&orderID, &customerID, &employeeID, &vehicleID,
			&description, &orderDate,
			&totalCents, &estDate, &compDate,
			&addRequest, &notesInt, &notesCust,
			&status,
			&itemID, &serviceID, &completed,
			&svcName, &svcDesc,
		); err != nil {
			return nil, apperr.Persistencef(err, "scan order row")
		}

		idx, seen := index[orderID]
		if !seen {
			v := orderpkg.View{
				OrderID:             orderID,
				CustomerID:          customerID,
				Description:         description,
				OrderDate:           orderDate,
				TotalPriceCents:     totalCents,
				AdditionalRequest:   addRequest,
				NotesForInternalUse: notesInt,
				NotesForCustomer:    notesCust,
				Completed:           status == string(entity.OrderCompleted),
				Services:            []orderpkg.ServiceView{},
			}
			if employeeID.Valid {
				id := employeeID.UUID
				v.EmployeeID = &id
			}
			if vehicleID.Valid {
				id := vehicleID.UUID
				v.VehicleID = &id
			}
			if estDate.Valid {
				t := estDate.Time
				v.EstimatedCompletionDate = &t
			}
			if compDate.Valid {
				t := compDate.Time
				v.CompletionDate = &t
			}
			views = append(views, v)
			idx = len(views) - 1
			index[orderID] = idx
		}

		// NULL item columns mean the order has no service rows.
		if itemID.Valid {
			views[idx].Services = append(views[idx].Services, orderpkg.ServiceView{
				ItemID:      itemID.UUID,
				ServiceID:   serviceID.UUID,
				Name:        svcName.String,
				Description: svcDesc.String,
				Completed:   completed.Bool,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistencef(err, "iterate order rows")
	}
	return views, nil
}

func (r *GormOrderRepo) MarkItemCompleted(ctx context.Context, orderID, itemID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.OrderServiceItem{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Update("completed", true)
	if res.Error != nil {
		return 0, apperr.Persistencef(res.Error, "mark order service completed")
	}
	return res.RowsAffected, nil
}

func (r *GormOrderRepo) SetStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.OrderStatusEntry{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return 0, apperr.Persistencef(res.Error, "update order status")
	}
	return res.RowsAffected, nil
}

func (r *GormOrderRepo) SetCompletionDate(ctx context.Context, orderID uuid.UUID, completedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.OrderInfo{}).
		Where("order_id = ?", orderID).
		Update("completion_date", completedAt)
	if res.Error != nil {
		return 0, apperr.Persistencef(res.Error, "stamp order completion date")
	}
	return res.RowsAffected, nil
}
