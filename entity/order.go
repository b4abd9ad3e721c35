package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle of an order.
type OrderStatus string

const (
	OrderOpen       OrderStatus = "open"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order is the root entity of a shop order. Completion state lives on the
// associated OrderStatusEntry, never on this row.
type Order struct {
	ID          uuid.UUID  `json:"order_id" gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID  `json:"customer_id" gorm:"type:uuid;index;not null"`
	EmployeeID  *uuid.UUID `json:"employee_id,omitempty" gorm:"type:uuid;index"`
	VehicleID   *uuid.UUID `json:"vehicle_id,omitempty" gorm:"type:uuid;index"`
	Description string     `json:"order_description" gorm:"type:text"`
	OrderDate   time.Time  `json:"order_date" gorm:"index;not null"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OrderInfo holds pricing, dates and notes for exactly one order.
type OrderInfo struct {
	ID                          uuid.UUID  `json:"-" gorm:"type:uuid;primaryKey"`
	OrderID                     uuid.UUID  `json:"-" gorm:"type:uuid;uniqueIndex;not null"`
	TotalPriceCents             int64      `json:"order_total_price_cents" gorm:"type:bigint;not null"`
	EstimatedCompletionDate     *time.Time `json:"estimated_completion_date,omitempty"`
	CompletionDate              *time.Time `json:"completion_date,omitempty"`
	AdditionalRequest           string     `json:"additional_request" gorm:"type:text"`
	NotesForInternalUse         string     `json:"notes_for_internal_use" gorm:"type:text"`
	NotesForCustomer            string     `json:"notes_for_customer" gorm:"type:text"`
	AdditionalRequestsCompleted bool       `json:"additional_requests_completed"`
	CreatedAt                   time.Time  `json:"created_at"`
	UpdatedAt                   time.Time  `json:"updated_at"`
}

// OrderStatusEntry records the current lifecycle status for one order.
type OrderStatusEntry struct {
	ID        uuid.UUID   `json:"-" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID   `json:"order_id" gorm:"type:uuid;uniqueIndex;not null"`
	Status    OrderStatus `json:"order_status" gorm:"type:text;index;not null"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderServiceItem links an order to one catalog service and tracks whether
// that piece of work is done.
type OrderServiceItem struct {
	ID        uuid.UUID `json:"order_service_id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;index;not null"`
	ServiceID uuid.UUID `json:"service_id" gorm:"type:uuid;index;not null"`
	Completed bool      `json:"service_completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommonService is a catalog entry for the kinds of work the shop offers
// (e.g. oil change, brake repair).
type CommonService struct {
	ID          uuid.UUID `json:"service_id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"service_name" gorm:"type:text;uniqueIndex;not null"`
	Description string    `json:"service_description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
