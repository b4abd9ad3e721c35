package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return db, mock
}

func orderListColumns() []string {
	return []string{
		"order_id", "customer_id", "employee_id", "vehicle_id",
		"description", "order_date",
		"total_price_cents", "estimated_completion_date", "completion_date",
		"additional_request", "notes_for_internal_use", "notes_for_customer",
		"status",
		"item_id", "service_id", "completed",
		"service_name", "service_description",
	}
}

// Three flat rows for the first order plus one null-item row for the second
// must fold into exactly two views, with service rows attached only where the
// left join produced them.
func TestListOrdersFoldsFlatRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormOrderRepo(db)

	order1 := uuid.New()
	order2 := uuid.New()
	customer := uuid.New()
	item1, item2 := uuid.New(), uuid.New()
	svc1, svc2 := uuid.New(), uuid.New()
	newest := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	oldest := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(orderListColumns()).
		AddRow(order1.String(), customer.String(), nil, nil,
			"brake job", newest,
			int64(25000), nil, nil,
			"", "", "",
			"in_progress",
			item1.String(), svc1.String(), true,
			"Brake repair", "Front and rear pads").
		AddRow(order1.String(), customer.String(), nil, nil,
			"brake job", newest,
			int64(25000), nil, nil,
			"", "", "",
			"in_progress",
			item2.String(), svc2.String(), false,
			"Oil change", "Full synthetic").
		AddRow(order2.String(), customer.String(), nil, nil,
			"diagnostics only", oldest,
			int64(5000), nil, nil,
			"", "", "",
			"completed",
			nil, nil, nil,
			nil, nil)

	mock.ExpectQuery(`FROM orders o`).WillReturnRows(rows)

	views, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	first := views[0]
	assert.Equal(t, order1, first.OrderID)
	assert.Equal(t, customer, first.CustomerID)
	assert.False(t, first.Completed)
	require.Len(t, first.Services, 2)
	assert.Equal(t, item1, first.Services[0].ItemID)
	assert.Equal(t, "Brake repair", first.Services[0].Name)
	assert.True(t, first.Services[0].Completed)
	assert.Equal(t, item2, first.Services[1].ItemID)
	assert.False(t, first.Services[1].Completed)

	second := views[1]
	assert.Equal(t, order2, second.OrderID)
	assert.True(t, second.Completed)
	assert.NotNil(t, second.Services)
	assert.Empty(t, second.Services)
}

func TestListOrdersEmptyResult(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormOrderRepo(db)

	mock.ExpectQuery(`FROM orders o`).
		WillReturnRows(sqlmock.NewRows(orderListColumns()))

	views, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestCreateOrderGraphCommitsAllInserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormOrderRepo(db)

	o := &entity.Order{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		Description: "brake job",
		OrderDate:   time.Now().UTC(),
	}
	info := &entity.OrderInfo{ID: uuid.New(), TotalPriceCents: 25000}
	status := &entity.OrderStatusEntry{ID: uuid.New(), Status: entity.OrderOpen}
	items := []entity.OrderServiceItem{
		{ID: uuid.New(), ServiceID: uuid.New()},
		{ID: uuid.New(), ServiceID: uuid.New()},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_infos"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_status_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_service_items"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.CreateOrderGraph(context.Background(), o, info, status, items)
	require.NoError(t, err)
	assert.Equal(t, o.ID, info.OrderID)
	assert.Equal(t, o.ID, status.OrderID)
	assert.Equal(t, o.ID, items[0].OrderID)
	assert.Equal(t, o.ID, items[1].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderGraphRollsBackOnShortBatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormOrderRepo(db)

	o := &entity.Order{ID: uuid.New(), CustomerID: uuid.New(), OrderDate: time.Now().UTC()}
	info := &entity.OrderInfo{ID: uuid.New()}
	status := &entity.OrderStatusEntry{ID: uuid.New(), Status: entity.OrderOpen}
	items := []entity.OrderServiceItem{
		{ID: uuid.New(), ServiceID: uuid.New()},
		{ID: uuid.New(), ServiceID: uuid.New()},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_infos"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_status_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_service_items"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := repo.CreateOrderGraph(context.Background(), o, info, status, items)
	require.Error(t, err)
	assert.Equal(t, apperr.Persistence, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkItemCompletedReportsRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "order_service_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := repo.MarkItemCompleted(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
