package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// completeScript overwrites the key only while it is still pending
var completeScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current == ARGV[1] then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
	return 1
end
return 0
`)

// releaseScript deletes the key only while it is still pending
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisStore shares idempotency keys between every instance of the service
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Connect creates a client for addr and verifies it answers
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgRedisConnect, err)
	}
	return client, nil
}

// Begin reserves key with SETNX
func (s *RedisStore) Begin(ctx context.Context, key string) (string, error) {
	k := KeyPrefix + key
	ok, err := s.client.SetNX(ctx, k, PendingValue, s.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgRedisBegin, err)
	}
	if ok {
		return "", nil
	}

	v, err := s.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return s.Begin(ctx, key)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgRedisBegin, err)
	}
	if v == PendingValue {
		return "", ErrInFlight
	}
	return v, nil
}

// Complete records the item created for key
func (s *RedisStore) Complete(ctx context.Context, key, itemID string) error {
	err := completeScript.Run(ctx, s.client, []string{KeyPrefix + key},
		PendingValue, itemID, s.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRedisComplete, err)
	}
	return nil
}

// Release frees a pending key
func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, s.client, []string{KeyPrefix + key}, PendingValue).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRedisRelease, err)
	}
	return nil
}
