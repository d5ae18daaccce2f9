package services

import (
	"context"
	"errors"
	"log"
	"time"

	"hhdonations/internal/caching"
	"hhdonations/internal/common"
	"hhdonations/internal/models"
	"hhdonations/internal/query"
	"hhdonations/internal/repositories"

	"github.com/google/uuid"
)

const statsCacheTTL = 5 * time.Minute

type PickupService interface {
	Create(ctx context.Context, pickup *models.Pickup) (*models.PickupDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error)
	Update(ctx context.Context, id uuid.UUID, patch *models.PickupPatch) (*models.PickupDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, opts query.Options) (query.Result[*models.PickupDetail], error)
	Complete(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error)
	MarkIncomplete(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error)
	Cancel(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error)
	Stats(ctx context.Context) (*models.PickupStats, error)
	RefreshStats(ctx context.Context) (*models.PickupStats, error)
}

type pickupService struct {
	pickupRepo repositories.PickupRepository
	binRepo    repositories.BinRepository
	driverRepo repositories.DriverRepository
	cache      caching.CacheService
}

func NewPickupService(pickupRepo repositories.PickupRepository, binRepo repositories.BinRepository, driverRepo repositories.DriverRepository, cache caching.CacheService) PickupService {
	return &pickupService{
		pickupRepo: pickupRepo,
		binRepo:    binRepo,
		driverRepo: driverRepo,
		cache:      cache,
	}
}

// validateBin confirms the referenced bin exists. Always re-read from
// the store; a bin deleted since the caller last looked must fail.
func (s *pickupService) validateBin(ctx context.Context, binID uuid.UUID) error {
	_, err := s.binRepo.GetByID(ctx, binID)
	if errors.Is(err, repositories.ErrNotFound) {
		return common.NewValidationError("bin_id", "bin not found")
	}
	if err != nil {
		return common.NewStorageError(err)
	}
	return nil
}

// validateDriver confirms the referenced driver exists and is active
// at assignment time.
func (s *pickupService) validateDriver(ctx context.Context, driverID uuid.UUID) error {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if errors.Is(err, repositories.ErrNotFound) {
		return common.NewValidationError("driver_id", "driver not found or inactive")
	}
	if err != nil {
		return common.NewStorageError(err)
	}
	if driver.Status != models.DriverStatusActive {
		return common.NewValidationError("driver_id", "driver not found or inactive")
	}
	return nil
}

func (s *pickupService) Create(ctx context.Context, pickup *models.Pickup) (*models.PickupDetail, error) {
	if pickup.BinID == uuid.Nil {
		return nil, common.NewValidationError("bin_id", "bin ID and pickup date are required")
	}
	if pickup.PickupDate.IsZero() {
		return nil, common.NewValidationError("pickup_date", "bin ID and pickup date are required")
	}
	if pickup.LoadType != nil && !pickup.LoadType.Valid() {
		return nil, common.NewValidationError("load_type", "load type must be one of: high_quality, medium_quality, low_quality, mixed")
	}
	if pickup.LoadWeight != nil && *pickup.LoadWeight < 0 {
		return nil, common.NewValidationError("load_weight", "load weight must not be negative")
	}
	if err := s.validateBin(ctx, pickup.BinID); err != nil {
		return nil, err
	}
	if pickup.DriverID != nil {
		if err := s.validateDriver(ctx, *pickup.DriverID); err != nil {
			return nil, err
		}
	}

	pickup.ID = uuid.New()
	pickup.Status = models.PickupStatusScheduled
	pickup.CompletedAt = nil

	if err := s.pickupRepo.Create(ctx, pickup); err != nil {
		return nil, common.NewStorageError(err)
	}
	return s.GetByID(ctx, pickup.ID)
}

func (s *pickupService) GetByID(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error) {
	detail, err := s.pickupRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, common.NewNotFoundError("pickup")
	}
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	return detail, nil
}

func (s *pickupService) Update(ctx context.Context, id uuid.UUID, patch *models.PickupPatch) (*models.PickupDetail, error) {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pickup := detail.Pickup

	if patch.LoadType != nil && !patch.LoadType.Valid() {
		return nil, common.NewValidationError("load_type", "load type must be one of: high_quality, medium_quality, low_quality, mixed")
	}
	if patch.LoadWeight != nil && *patch.LoadWeight < 0 {
		return nil, common.NewValidationError("load_weight", "load weight must not be negative")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, common.NewValidationError("status", "status must be one of: scheduled, in_progress, completed, cancelled")
	}
	if patch.BinID != nil {
		if err := s.validateBin(ctx, *patch.BinID); err != nil {
			return nil, err
		}
		pickup.BinID = *patch.BinID
	}
	if patch.ClearDriver {
		pickup.DriverID = nil
	} else if patch.DriverID != nil {
		// Reassignment re-validates exactly as at creation.
		if err := s.validateDriver(ctx, *patch.DriverID); err != nil {
			return nil, err
		}
		pickup.DriverID = patch.DriverID
	}
	if patch.PickupDate != nil {
		pickup.PickupDate = *patch.PickupDate
	}
	if patch.PickupTime != nil {
		pickup.PickupTime = patch.PickupTime
	}
	if patch.LoadType != nil {
		pickup.LoadType = patch.LoadType
	}
	if patch.LoadWeight != nil {
		pickup.LoadWeight = patch.LoadWeight
	}
	if patch.Notes != nil {
		pickup.Notes = patch.Notes
	}
	if patch.Status != nil && *patch.Status != pickup.Status {
		if err := s.transition(&pickup, *patch.Status); err != nil {
			return nil, err
		}
	}

	if err := s.pickupRepo.Update(ctx, &pickup); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewNotFoundError("pickup")
		}
		return nil, common.NewStorageError(err)
	}
	return s.GetByID(ctx, id)
}

// transition moves the pickup to next, enforcing the state machine and
// keeping completedAt in lockstep with the completed status.
func (s *pickupService) transition(pickup *models.Pickup, next models.PickupStatus) error {
	if !pickup.Status.CanTransitionTo(next) {
		return common.NewConflictError("cannot change status from " + string(pickup.Status) + " to " + string(next))
	}
	pickup.Status = next
	if next == models.PickupStatusCompleted {
		if pickup.CompletedAt == nil {
			now := time.Now()
			pickup.CompletedAt = &now
		}
	} else {
		pickup.CompletedAt = nil
	}
	return nil
}

func (s *pickupService) applyTransition(ctx context.Context, id uuid.UUID, next models.PickupStatus) (*models.PickupDetail, error) {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pickup := detail.Pickup
	if err := s.transition(&pickup, next); err != nil {
		return nil, err
	}
	if err := s.pickupRepo.Update(ctx, &pickup); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewNotFoundError("pickup")
		}
		return nil, common.NewStorageError(err)
	}
	return s.GetByID(ctx, id)
}

// Complete moves a scheduled or in-progress pickup to completed and
// stamps completedAt.
func (s *pickupService) Complete(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error) {
	return s.applyTransition(ctx, id, models.PickupStatusCompleted)
}

// MarkIncomplete is the administrative correction path: a completed
// pickup returns to scheduled and completedAt is cleared.
func (s *pickupService) MarkIncomplete(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error) {
	return s.applyTransition(ctx, id, models.PickupStatusScheduled)
}

// Cancel is final; no transition leads out of cancelled.
func (s *pickupService) Cancel(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error) {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail.Status == models.PickupStatusCancelled {
		return nil, common.NewConflictError("pickup is already cancelled")
	}
	return s.applyTransition(ctx, id, models.PickupStatusCancelled)
}

func (s *pickupService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.pickupRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return common.NewNotFoundError("pickup")
	}
	if err != nil {
		return common.NewStorageError(err)
	}
	return nil
}

func (s *pickupService) List(ctx context.Context, opts query.Options) (query.Result[*models.PickupDetail], error) {
	pickups, err := s.pickupRepo.List(ctx)
	if err != nil {
		return query.Result[*models.PickupDetail]{}, common.NewStorageError(err)
	}
	return query.Apply(pickups, opts, pickupFieldValue), nil
}

// Stats serves the dashboard counters, read through the cache when one
// is configured.
func (s *pickupService) Stats(ctx context.Context) (*models.PickupStats, error) {
	if s.cache != nil {
		if stats, err := s.cache.GetPickupStats(ctx); err == nil {
			return stats, nil
		}
	}
	return s.RefreshStats(ctx)
}

// RefreshStats recomputes the counters from the store and rewarms the
// cache. The background scheduler calls this periodically.
func (s *pickupService) RefreshStats(ctx context.Context) (*models.PickupStats, error) {
	stats, err := s.pickupRepo.Stats(ctx)
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	if s.cache != nil {
		if err := s.cache.SetPickupStats(ctx, stats, statsCacheTTL); err != nil {
			log.Printf("Failed to cache pickup stats: %v", err)
		}
	}
	return stats, nil
}

func pickupFieldValue(pickup *models.PickupDetail, field string) (string, bool) {
	switch field {
	case "id":
		return pickup.ID.String(), true
	case "bin_id":
		return pickup.BinID.String(), true
	case "driver_id":
		if pickup.DriverID == nil {
			return "", false
		}
		return pickup.DriverID.String(), true
	case "pickup_date":
		return pickup.PickupDate.Format("2006-01-02"), true
	case "status":
		return string(pickup.Status), true
	case "load_type":
		if pickup.LoadType == nil {
			return "", false
		}
		return string(*pickup.LoadType), true
	case "bin_number":
		if pickup.BinNumber == nil {
			return "", false
		}
		return *pickup.BinNumber, true
	case "bin_name":
		if pickup.BinName == nil {
			return "", false
		}
		return *pickup.BinName, true
	case "bin_address":
		if pickup.BinAddress == nil {
			return "", false
		}
		return *pickup.BinAddress, true
	case "driver_name":
		if pickup.DriverName == nil {
			return "", false
		}
		return *pickup.DriverName, true
	case "notes":
		if pickup.Notes == nil {
			return "", false
		}
		return *pickup.Notes, true
	default:
		return "", false
	}
}
