package order

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ServiceView is one service line inside an order view.
type ServiceView struct {
	ItemID      uuid.UUID `json:"order_service_id"`
	ServiceID   uuid.UUID `json:"service_id"`
	Name        string    `json:"service_name"`
	Description string    `json:"service_description"`
	Completed   bool      `json:"service_completed"`
}

// View is the nested external shape of an order: order and order_info
// attributes merged, completion derived from the status entry, and the
// associated service lines collected under order_services.
type View struct {
	OrderID                 uuid.UUID     `json:"order_id"`
	CustomerID              uuid.UUID     `json:"customer_id"`
	EmployeeID              *uuid.UUID    `json:"employee_id,omitempty"`
	VehicleID               *uuid.UUID    `json:"vehicle_id,omitempty"`
	Description             string        `json:"order_description"`
	OrderDate               time.Time     `json:"order_date"`
	TotalPriceCents         int64         `json:"order_total_price_cents"`
	EstimatedCompletionDate *time.Time    `json:"estimated_completion_date,omitempty"`
	CompletionDate          *time.Time    `json:"completion_date,omitempty"`
	AdditionalRequest       string        `json:"additional_request"`
	NotesForInternalUse     string        `json:"notes_for_internal_use"`
	NotesForCustomer        string        `json:"notes_for_customer"`
	Completed               bool          `json:"order_completed"`
	Services                []ServiceView `json:"order_services"`
}

// CreateOrderRequest carries the data required to open an order. The
// customer is addressed by hash, never by surrogate id.
type CreateOrderRequest struct {
	CustomerHash            string
	EmployeeID              *uuid.UUID
	VehicleID               *uuid.UUID
	Description             string
	TotalPriceCents         int64
	EstimatedCompletionDate *time.Time
	AdditionalRequest       string
	NotesForInternalUse     string
	NotesForCustomer        string
	ServiceIDs              []uuid.UUID
}

// Notifier receives order lifecycle events. The realtime hub implements it;
// a nil notifier disables events.
type Notifier interface {
	BroadcastOrderEvent(event string, payload any)
}

// Service exposes order-related business operations.
type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*View, error)
	ListOrders(ctx context.Context) ([]View, error)
	MarkServiceCompleted(ctx context.Context, orderID, itemID uuid.UUID) error
	CompleteOrder(ctx context.Context, orderID uuid.UUID) error
}
