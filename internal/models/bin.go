package models

import (
	"time"

	"github.com/google/uuid"
)

type BinType string

const (
	BinTypeIndoor  BinType = "Indoor"
	BinTypeOutdoor BinType = "Outdoor"
)

func (t BinType) Valid() bool {
	return t == BinTypeIndoor || t == BinTypeOutdoor
}

type BinStatus string

const (
	BinStatusActive      BinStatus = "active"
	BinStatusInactive    BinStatus = "inactive"
	BinStatusMaintenance BinStatus = "maintenance"
)

func (s BinStatus) Valid() bool {
	return s == BinStatusActive || s == BinStatusInactive || s == BinStatusMaintenance
}

// Bin is a physical donation receptacle at a fixed address. BinNumber
// is assigned once at creation and never reused.
type Bin struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BinNumber string    `json:"bin_number" db:"bin_number"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Latitude  *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64  `json:"longitude,omitempty" db:"longitude"`
	Hours     string    `json:"hours" db:"hours"`
	Type      BinType   `json:"type" db:"type"`
	DriveUp   bool      `json:"drive_up" db:"drive_up"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`
	Distance  *string   `json:"distance,omitempty" db:"distance"`
	Status    BinStatus `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasCoordinates reports whether the bin has been geocoded.
func (b *Bin) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// BinWithDistance is a bin annotated with the caller-relative
// great-circle distance for the public listing.
type BinWithDistance struct {
	Bin
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// BinPatch holds a partial update; nil fields are left untouched.
type BinPatch struct {
	Name      *string    `json:"name,omitempty"`
	Address   *string    `json:"address,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	Hours     *string    `json:"hours,omitempty"`
	Type      *BinType   `json:"type,omitempty"`
	DriveUp   *bool      `json:"drive_up,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Distance  *string    `json:"distance,omitempty"`
	Status    *BinStatus `json:"status,omitempty"`
}
