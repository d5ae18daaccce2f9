package background

import (
	"context"
	"log"
	"sync"
	"time"

	"hhdonations/internal/jobs"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages the recurring background jobs.
type JobScheduler struct {
	scheduler gocron.Scheduler
	statsSvc  *jobs.StatsRefreshService
	jobsByID  map[string]gocron.Job
	mu        sync.RWMutex
}

// NewJobScheduler creates a new job scheduler
func NewJobScheduler(statsSvc *jobs.StatsRefreshService) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		statsSvc:  statsSvc,
		jobsByID:  make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	statsJob, err := js.scheduler.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(js.refreshPickupStats, context.Background()),
		gocron.WithName("pickup-stats-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create stats refresh job: %v", err)
	} else {
		js.mu.Lock()
		js.jobsByID["pickup-stats"] = statsJob
		js.mu.Unlock()
	}
}

func (js *JobScheduler) refreshPickupStats(ctx context.Context) {
	if _, err := js.statsSvc.Refresh(ctx); err != nil {
		log.Printf("Pickup stats refresh job failed: %v", err)
	}
}
