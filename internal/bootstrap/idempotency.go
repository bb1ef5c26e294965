package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/Stockpile_Go/internal/config"
	"github.com/osse101/Stockpile_Go/internal/idempotency"
)

// InitializeIdempotency picks the idempotency key store. Redis is used when
// REDIS_ADDR is set so keys survive restarts and are shared between replicas;
// otherwise keys live in a bounded in-memory cache. The returned client is nil
// for the memory store.
func InitializeIdempotency(ctx context.Context, cfg *config.Config) (idempotency.Store, *redis.Client, error) {
	if cfg.RedisAddr == "" {
		slog.Info(LogMsgIdempotencyMemory, "capacity", MemoryIdempotencyCapacity, "ttl", cfg.IdempotencyTTL)
		return idempotency.NewMemoryStore(MemoryIdempotencyCapacity, cfg.IdempotencyTTL), nil, nil
	}

	client, err := idempotency.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
	}

	slog.Info(LogMsgIdempotencyRedis, "addr", cfg.RedisAddr, "ttl", cfg.IdempotencyTTL)
	return idempotency.NewRedisStore(client, cfg.IdempotencyTTL), client, nil
}
