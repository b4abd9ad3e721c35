package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerIdentifier is the root of the customer aggregate. The Hash column
// is derived from email+phone at creation time and never recomputed; it is
// the only customer key exposed outside the service. Rows are never deleted,
// so there is intentionally no soft-delete column here.
type CustomerIdentifier struct {
	ID        uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"customer_email" gorm:"type:text;uniqueIndex;not null"`
	Phone     string    `json:"customer_phone_number" gorm:"type:text;uniqueIndex;not null"`
	Hash      string    `json:"customer_hash" gorm:"type:char(64);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerInfo is the mutable profile attached 1:1 to a CustomerIdentifier.
// Deactivation flips Active; info rows are never deleted on their own.
type CustomerInfo struct {
	ID         uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `json:"-" gorm:"type:uuid;uniqueIndex;not null"`
	FirstName  string    `json:"customer_first_name" gorm:"type:text;not null"`
	LastName   string    `json:"customer_last_name" gorm:"type:text;not null"`
	Active     bool      `json:"active_customer_status" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
