package models

import (
	"time"

	"github.com/google/uuid"
)

type PickupStatus string

const (
	PickupStatusScheduled  PickupStatus = "scheduled"
	PickupStatusInProgress PickupStatus = "in_progress"
	PickupStatusCompleted  PickupStatus = "completed"
	PickupStatusCancelled  PickupStatus = "cancelled"
)

func (s PickupStatus) Valid() bool {
	switch s {
	case PickupStatusScheduled, PickupStatusInProgress, PickupStatusCompleted, PickupStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are defined from s.
// completed allows only the explicit correction back to scheduled;
// cancelled is final.
func (s PickupStatus) Terminal() bool {
	return s == PickupStatusCompleted || s == PickupStatusCancelled
}

var allowedPickupTransitions = map[PickupStatus][]PickupStatus{
	PickupStatusScheduled:  {PickupStatusInProgress, PickupStatusCompleted, PickupStatusCancelled},
	PickupStatusInProgress: {PickupStatusScheduled, PickupStatusCompleted, PickupStatusCancelled},
	PickupStatusCompleted:  {PickupStatusScheduled, PickupStatusCancelled},
	PickupStatusCancelled:  {},
}

// CanTransitionTo reports whether the state machine permits moving
// from s to next. A no-op transition to the same status is allowed.
func (s PickupStatus) CanTransitionTo(next PickupStatus) bool {
	if s == next {
		return true
	}
	for _, candidate := range allowedPickupTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

type LoadType string

const (
	LoadTypeHighQuality   LoadType = "high_quality"
	LoadTypeMediumQuality LoadType = "medium_quality"
	LoadTypeLowQuality    LoadType = "low_quality"
	LoadTypeMixed         LoadType = "mixed"
)

func (t LoadType) Valid() bool {
	switch t {
	case LoadTypeHighQuality, LoadTypeMediumQuality, LoadTypeLowQuality, LoadTypeMixed:
		return true
	}
	return false
}

// Pickup is a scheduled or completed collection event linking one bin
// and at most one driver. CompletedAt is set iff status is completed.
type Pickup struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	BinID       uuid.UUID    `json:"bin_id" db:"bin_id"`
	DriverID    *uuid.UUID   `json:"driver_id,omitempty" db:"driver_id"`
	PickupDate  time.Time    `json:"pickup_date" db:"pickup_date"`
	PickupTime  *string      `json:"pickup_time,omitempty" db:"pickup_time"`
	LoadType    *LoadType    `json:"load_type,omitempty" db:"load_type"`
	LoadWeight  *float64     `json:"load_weight,omitempty" db:"load_weight"`
	Status      PickupStatus `json:"status" db:"status"`
	CompletedAt *time.Time   `json:"completed_at,omitempty" db:"completed_at"`
	Notes       *string      `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// PickupDetail is a pickup enriched with bin and driver context for
// list and get reads. The joined fields are nil when the reference is
// absent.
type PickupDetail struct {
	Pickup
	BinNumber   *string `json:"bin_number,omitempty"`
	BinName     *string `json:"bin_name,omitempty"`
	BinAddress  *string `json:"bin_address,omitempty"`
	DriverName  *string `json:"driver_name,omitempty"`
	DriverPhone *string `json:"driver_phone,omitempty"`
}

// PickupPatch holds a partial update; nil fields are left untouched.
// ClearDriver distinguishes "leave the driver alone" from "unassign
// the driver".
type PickupPatch struct {
	BinID       *uuid.UUID    `json:"bin_id,omitempty"`
	DriverID    *uuid.UUID    `json:"driver_id,omitempty"`
	ClearDriver bool          `json:"clear_driver,omitempty"`
	PickupDate  *time.Time    `json:"pickup_date,omitempty"`
	PickupTime  *string       `json:"pickup_time,omitempty"`
	LoadType    *LoadType     `json:"load_type,omitempty"`
	LoadWeight  *float64      `json:"load_weight,omitempty"`
	Status      *PickupStatus `json:"status,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
}

// PickupStats summarizes pickup activity for the dashboard.
type PickupStats struct {
	TotalPickups     int     `json:"total_pickups"`
	ScheduledPickups int     `json:"scheduled_pickups"`
	CompletedPickups int     `json:"completed_pickups"`
	TotalWeight      float64 `json:"total_weight"`
}
