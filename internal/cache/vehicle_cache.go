package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// VehicleCache is a redis-backed read-through cache for vehicle metadata
// and image lists. Every redis failure is treated as a miss; the caller
// falls back to the store.
type VehicleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string) (*VehicleCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &VehicleCache{client: client, ttl: defaultTTL}, nil
}

func (c *VehicleCache) GetVehicle(ctx context.Context, carID uuid.UUID) (*models.Vehicle, bool) {
	data, err := c.client.Get(ctx, vehicleKey(carID)).Bytes()
	if err != nil {
		return nil, false
	}
	var v models.Vehicle
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return &v, true
}

func (c *VehicleCache) SetVehicle(ctx context.Context, vehicle *models.Vehicle) {
	data, err := json.Marshal(vehicle)
	if err != nil {
		return
	}
	c.client.Set(ctx, vehicleKey(vehicle.ID), data, c.ttl)
}

func (c *VehicleCache) GetImages(ctx context.Context, carID uuid.UUID) ([]string, bool) {
	data, err := c.client.Get(ctx, imagesKey(carID)).Bytes()
	if err != nil {
		return nil, false
	}
	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, false
	}
	return urls, true
}

func (c *VehicleCache) SetImages(ctx context.Context, carID uuid.UUID, urls []string) {
	data, err := json.Marshal(urls)
	if err != nil {
		return
	}
	c.client.Set(ctx, imagesKey(carID), data, c.ttl)
}

func (c *VehicleCache) Close() error {
	return c.client.Close()
}

func vehicleKey(carID uuid.UUID) string {
	return fmt.Sprintf("vehicle:%s", carID)
}

func imagesKey(carID uuid.UUID) string {
	return fmt.Sprintf("vehicle:images:%s", carID)
}
