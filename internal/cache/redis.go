package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TomasMurua/Hotel-Pacific-Reef/config"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache memoizes the reservation snapshot between dashboard renders.
// The TTL is injected so the invalidation policy stays a caller decision.
type RedisCache struct {
	client      *redis.Client
	snapshotTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, snapshotTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		snapshotTTL: snapshotTTL,
	}
}

func (c *RedisCache) GetReservations(ctx context.Context) ([]domain.Reservation, error) {
	data, err := c.client.Get(ctx, snapshotKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var reservations []domain.Reservation
	if err := json.Unmarshal(data, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *RedisCache) SetReservations(ctx context.Context, reservations []domain.Reservation) error {
	payload, err := json.Marshal(reservations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey(), payload, c.snapshotTTL).Err()
}

// Invalidate drops the snapshot so the next read hits the store. Called
// after every successful booking insert.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snapshotKey()).Err()
}

func snapshotKey() string {
	return "cache:reservations"
}
