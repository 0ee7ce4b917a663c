package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/roadwatch/report-system/internal/core/ports"
)

const keyPrefix = "mirror:"

// Mirror persists dashboard state as flat Redis string keys, one per mirror
// key, no TTL. Key format: mirror:<key>.
type Mirror struct {
	client *redis.Client
}

// NewMirror wraps an already-connected Redis client.
func NewMirror(client *redis.Client) *Mirror {
	return &Mirror{client: client}
}

func (m *Mirror) Get(ctx context.Context, key string) (string, error) {
	v, err := m.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ports.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("mirror get: %w", err)
	}
	return v, nil
}

func (m *Mirror) Set(ctx context.Context, key, value string) error {
	if err := m.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("mirror set: %w", err)
	}
	return nil
}

// Delete removes key; deleting an absent key is not an error.
func (m *Mirror) Delete(ctx context.Context, key string) error {
	if err := m.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("mirror delete: %w", err)
	}
	return nil
}
