package caching

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hhdonations/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	pickupStatsKey = "pickups:stats"
	publicBinsKey  = "bins:public"
)

// CacheService holds the hot read paths: dashboard pickup counters and
// the public bin listing payload.
type CacheService interface {
	GetPickupStats(ctx context.Context) (*models.PickupStats, error)
	SetPickupStats(ctx context.Context, stats *models.PickupStats, ttl time.Duration) error
	InvalidatePickupStats(ctx context.Context) error

	GetPublicBins(ctx context.Context) ([]*models.Bin, error)
	SetPublicBins(ctx context.Context, bins []*models.Bin, ttl time.Duration) error
	InvalidatePublicBins(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(client *redis.Client) CacheService {
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v", err)
	}
	return &redisCacheService{client: client}
}

func (c *redisCacheService) GetPickupStats(ctx context.Context) (*models.PickupStats, error) {
	data, err := c.client.Get(ctx, pickupStatsKey).Result()
	if err != nil {
		return nil, err
	}
	stats := &models.PickupStats{}
	if err := json.Unmarshal([]byte(data), stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *redisCacheService) SetPickupStats(ctx context.Context, stats *models.PickupStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pickupStatsKey, data, ttl).Err()
}

func (c *redisCacheService) InvalidatePickupStats(ctx context.Context) error {
	return c.client.Del(ctx, pickupStatsKey).Err()
}

func (c *redisCacheService) GetPublicBins(ctx context.Context) ([]*models.Bin, error) {
	data, err := c.client.Get(ctx, publicBinsKey).Result()
	if err != nil {
		return nil, err
	}
	var bins []*models.Bin
	if err := json.Unmarshal([]byte(data), &bins); err != nil {
		return nil, err
	}
	return bins, nil
}

func (c *redisCacheService) SetPublicBins(ctx context.Context, bins []*models.Bin, ttl time.Duration) error {
	data, err := json.Marshal(bins)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, publicBinsKey, data, ttl).Err()
}

func (c *redisCacheService) InvalidatePublicBins(ctx context.Context) error {
	return c.client.Del(ctx, publicBinsKey).Err()
}
