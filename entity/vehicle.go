package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerVehicle stores a vehicle owned by a customer. Vehicles are keyed
// externally by their own id; the owning customer is addressed by hash at
// the API surface and resolved to the surrogate id before use.
type CustomerVehicle struct {
	ID         uuid.UUID      `json:"vehicle_id" gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `json:"-" gorm:"type:uuid;index;not null"`
	Year       int            `json:"vehicle_year" gorm:"not null"`
	Make       string         `json:"vehicle_make" gorm:"type:text;not null"`
	Model      string         `json:"vehicle_model" gorm:"type:text;not null"`
	Type       string         `json:"vehicle_type" gorm:"type:text"`
	Mileage    int            `json:"vehicle_mileage"`
	Tag        string         `json:"vehicle_tag" gorm:"type:text"`
	Serial     string         `json:"vehicle_serial" gorm:"type:text"`
	Color      string         `json:"vehicle_color" gorm:"type:text"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
