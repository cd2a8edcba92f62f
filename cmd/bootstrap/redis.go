package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aljonb/sched/internal/infra/cache"
	"github.com/aljonb/sched/internal/pkg/config"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewSlotCache,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty. Consumers fall back to
// in-process implementations in that case.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("redis disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	slog.Info("redis connected", "addr", cfg.Redis.Addr)
	return rdb, nil
}

func NewSlotCache(rdb *redis.Client) shared.SlotCache {
	if rdb == nil {
		return shared.NoopSlotCache{}
	}
	return cache.NewRedisSlotCache(rdb)
}
