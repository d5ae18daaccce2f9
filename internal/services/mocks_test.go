package services

import (
	"context"
	"time"

	"hhdonations/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repositories and cache shared by the service suites.

type MockBinRepository struct {
	mock.Mock
}

func (m *MockBinRepository) Create(ctx context.Context, bin *models.Bin) error {
	args := m.Called(ctx, bin)
	return args.Error(0)
}

func (m *MockBinRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bin), args.Error(1)
}

func (m *MockBinRepository) Update(ctx context.Context, bin *models.Bin) error {
	args := m.Called(ctx, bin)
	return args.Error(0)
}

func (m *MockBinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBinRepository) List(ctx context.Context) ([]*models.Bin, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Bin), args.Error(1)
}

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByEmail(ctx context.Context, email string) (*models.Driver, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverRepository) Update(ctx context.Context, driver *models.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDriverRepository) List(ctx context.Context) ([]*models.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Driver), args.Error(1)
}

type MockPickupRepository struct {
	mock.Mock
}

func (m *MockPickupRepository) Create(ctx context.Context, pickup *models.Pickup) error {
	args := m.Called(ctx, pickup)
	return args.Error(0)
}

func (m *MockPickupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PickupDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PickupDetail), args.Error(1)
}

func (m *MockPickupRepository) Update(ctx context.Context, pickup *models.Pickup) error {
	args := m.Called(ctx, pickup)
	return args.Error(0)
}

func (m *MockPickupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPickupRepository) List(ctx context.Context) ([]*models.PickupDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.PickupDetail), args.Error(1)
}

func (m *MockPickupRepository) Stats(ctx context.Context) (*models.PickupStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PickupStats), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetPickupStats(ctx context.Context) (*models.PickupStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PickupStats), args.Error(1)
}

func (m *MockCacheService) SetPickupStats(ctx context.Context, stats *models.PickupStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidatePickupStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) GetPublicBins(ctx context.Context) ([]*models.Bin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bin), args.Error(1)
}

func (m *MockCacheService) SetPublicBins(ctx context.Context, bins []*models.Bin, ttl time.Duration) error {
	args := m.Called(ctx, bins, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidatePublicBins(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
