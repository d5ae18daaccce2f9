package services

import (
	"context"
	"errors"

	"hhdonations/internal/common"
	"hhdonations/internal/models"
	"hhdonations/internal/query"
	"hhdonations/internal/repositories"

	"github.com/google/uuid"
)

type DriverService interface {
	Create(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	Update(ctx context.Context, id uuid.UUID, patch *models.DriverPatch) (*models.Driver, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, opts query.Options) (query.Result[*models.Driver], error)
}

type driverService struct {
	driverRepo repositories.DriverRepository
}

func NewDriverService(driverRepo repositories.DriverRepository) DriverService {
	return &driverService{driverRepo: driverRepo}
}

func (s *driverService) Create(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	if driver.Name == "" {
		return nil, common.NewValidationError("name", "name is required")
	}
	if driver.Status == "" {
		driver.Status = models.DriverStatusActive
	}
	if !driver.Status.Valid() {
		return nil, common.NewValidationError("status", `status must be "active" or "inactive"`)
	}
	if driver.Email != nil {
		if _, err := s.driverRepo.GetByEmail(ctx, *driver.Email); err == nil {
			return nil, common.NewConflictError("email already exists")
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewStorageError(err)
		}
	}

	driver.ID = uuid.New()
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, common.NewConflictError("email already exists")
		}
		return nil, common.NewStorageError(err)
	}

	created, err := s.driverRepo.GetByID(ctx, driver.ID)
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	return created, nil
}

func (s *driverService) GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, common.NewNotFoundError("driver")
	}
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	return driver, nil
}

func (s *driverService) Update(ctx context.Context, id uuid.UUID, patch *models.DriverPatch) (*models.Driver, error) {
	driver, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, common.NewValidationError("status", `status must be "active" or "inactive"`)
	}

	// Re-check uniqueness only when the email actually changes.
	if patch.Email != nil && (driver.Email == nil || *driver.Email != *patch.Email) {
		existing, err := s.driverRepo.GetByEmail(ctx, *patch.Email)
		if err == nil && existing.ID != id {
			return nil, common.NewConflictError("email already exists")
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewStorageError(err)
		}
	}

	if patch.Name != nil {
		driver.Name = *patch.Name
	}
	if patch.Email != nil {
		driver.Email = patch.Email
	}
	if patch.Phone != nil {
		driver.Phone = patch.Phone
	}
	if patch.LicenseNumber != nil {
		driver.LicenseNumber = patch.LicenseNumber
	}
	if patch.Status != nil {
		driver.Status = *patch.Status
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewNotFoundError("driver")
		}
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, common.NewConflictError("email already exists")
		}
		return nil, common.NewStorageError(err)
	}

	updated, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	return updated, nil
}

// Delete refuses to remove a driver with scheduled or in-progress
// pickups; the check and the delete run in one store transaction.
func (s *driverService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.driverRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrDriverHasOpenPickups) {
		return common.NewConflictError("cannot delete driver with active pickups; reassign or cancel pickups first")
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return common.NewNotFoundError("driver")
	}
	if err != nil {
		return common.NewStorageError(err)
	}
	return nil
}

func (s *driverService) List(ctx context.Context, opts query.Options) (query.Result[*models.Driver], error) {
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return query.Result[*models.Driver]{}, common.NewStorageError(err)
	}
	return query.Apply(drivers, opts, driverFieldValue), nil
}

func driverFieldValue(driver *models.Driver, field string) (string, bool) {
	switch field {
	case "id":
		return driver.ID.String(), true
	case "name":
		return driver.Name, true
	case "email":
		if driver.Email == nil {
			return "", false
		}
		return *driver.Email, true
	case "phone":
		if driver.Phone == nil {
			return "", false
		}
		return *driver.Phone, true
	case "license_number":
		if driver.LicenseNumber == nil {
			return "", false
		}
		return *driver.LicenseNumber, true
	case "status":
		return string(driver.Status), true
	default:
		return "", false
	}
}
