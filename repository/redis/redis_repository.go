package redis

import (
	"context"
	"time"

	redisclient "github.com/anhlog/wms/cmd/redis"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// SetCooldown claims key for ttl; returns false while a prior claim holds.
	// Used to keep a persisting alert condition from re-alerting every sweep.
	SetCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

func (r *redis) SetCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, key, "1", ttl).Result()
}
