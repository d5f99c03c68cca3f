package session

import (
	"context"
	"fmt"

	"github.com/lshigami/quizmaster/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewRedisClient returns nil when REDIS_ADDR is unset so callers fall back to
// in-process stores.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, using in-process session store and job locks")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("connecting to redis at %s: %w", cfg.Redis.Addr, err)
			}
			log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connected")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
