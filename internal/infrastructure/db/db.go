// Package db constructs the configured mirror backend.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/roadwatch/report-system/internal/core/ports"
	"github.com/roadwatch/report-system/internal/infrastructure/db/memory"
	mongodb "github.com/roadwatch/report-system/internal/infrastructure/db/mongo"
	redisdb "github.com/roadwatch/report-system/internal/infrastructure/db/redis"
	"github.com/roadwatch/report-system/internal/pkg/config"
)

// NewMirror builds the mirror backend named by cfg.MirrorBackend and returns
// it together with a close function for the underlying connection.
func NewMirror(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (ports.Mirror, func(context.Context) error, error) {
	switch cfg.MirrorBackend {
	case "", "memory":
		logger.Info().Msg("using in-memory mirror, state will not survive a restart")
		return memory.NewMirror(), func(context.Context) error { return nil }, nil

	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, fmt.Errorf("mirror backend redis: %w", err)
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis mirror")
		return redisdb.NewMirror(client), func(context.Context) error { return client.Close() }, nil

	case "mongo":
		client, database, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, fmt.Errorf("mirror backend mongo: %w", err)
		}
		logger.Info().Str("database", cfg.Mongo.Database).Msg("using mongo mirror")
		return mongodb.NewMirror(database), client.Disconnect, nil

	default:
		return nil, nil, fmt.Errorf("unknown mirror backend %q", cfg.MirrorBackend)
	}
}
