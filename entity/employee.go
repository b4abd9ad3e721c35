package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRole enumerates shop staff roles.
type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "employee"
	RoleManager  EmployeeRole = "manager"
	RoleAdmin    EmployeeRole = "admin"
)

// Employee represents a staff member who can log in to the backend.
type Employee struct {
	ID           uuid.UUID      `json:"employee_id" gorm:"type:uuid;primaryKey"`
	Email        string         `json:"employee_email" gorm:"type:text;uniqueIndex;not null"`
	FirstName    string         `json:"employee_first_name" gorm:"type:text;not null"`
	LastName     string         `json:"employee_last_name" gorm:"type:text;not null"`
	Phone        string         `json:"employee_phone" gorm:"type:text"`
	PasswordHash string         `json:"-" gorm:"type:text;not null"`
	Role         EmployeeRole   `json:"company_role" gorm:"type:text;index;not null"`
	Active       bool           `json:"active_employee" gorm:"index"`
	CreatedAt    time.Time      `json:"added_date"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
