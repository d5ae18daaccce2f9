package models

import (
	"time"

	"github.com/google/uuid"
)

type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "active"
	DriverStatusInactive DriverStatus = "inactive"
)

func (s DriverStatus) Valid() bool {
	return s == DriverStatusActive || s == DriverStatusInactive
}

// Driver is a person eligible to be assigned to pickups.
type Driver struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Email         *string      `json:"email,omitempty" db:"email"`
	Phone         *string      `json:"phone,omitempty" db:"phone"`
	LicenseNumber *string      `json:"license_number,omitempty" db:"license_number"`
	Status        DriverStatus `json:"status" db:"status"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// DriverPatch holds a partial update; nil fields are left untouched.
type DriverPatch struct {
	Name          *string       `json:"name,omitempty"`
	Email         *string       `json:"email,omitempty"`
	Phone         *string       `json:"phone,omitempty"`
	LicenseNumber *string       `json:"license_number,omitempty"`
	Status        *DriverStatus `json:"status,omitempty"`
}
