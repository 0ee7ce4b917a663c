package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "memory", cfg.MirrorBackend)
	assert.Equal(t, 5*time.Second, cfg.TelemetryInterval)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "roadwatch", cfg.Mongo.Database)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MIRROR_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("TELEMETRY_INTERVAL", "250ms")

	cfg := Load()

	assert.Equal(t, "redis", cfg.MirrorBackend)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.TelemetryInterval)
}
