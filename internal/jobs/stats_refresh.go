package jobs

import (
	"context"
	"log"
	"time"

	"hhdonations/internal/services"
)

// StatsRefreshService rewarms the cached pickup counters so the
// dashboard reads stay off the database.
type StatsRefreshService struct {
	pickupService services.PickupService
}

type StatsRefreshResult struct {
	TotalPickups  int
	LastRefreshAt time.Time
}

func NewStatsRefreshService(pickupService services.PickupService) *StatsRefreshService {
	return &StatsRefreshService{pickupService: pickupService}
}

func (s *StatsRefreshService) Refresh(ctx context.Context) (*StatsRefreshResult, error) {
	stats, err := s.pickupService.RefreshStats(ctx)
	if err != nil {
		log.Printf("Failed to refresh pickup stats: %v", err)
		return nil, err
	}

	result := &StatsRefreshResult{
		TotalPickups:  stats.TotalPickups,
		LastRefreshAt: time.Now(),
	}

	log.Printf("Pickup stats refreshed: total=%d scheduled=%d completed=%d weight=%.2f",
		stats.TotalPickups, stats.ScheduledPickups, stats.CompletedPickups, stats.TotalWeight)

	return result, nil
}
