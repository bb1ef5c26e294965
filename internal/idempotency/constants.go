package idempotency

import "time"

const (
	// KeyPrefix namespaces idempotency keys in shared stores
	KeyPrefix = "idempotency:"

	// PendingValue marks a reserved key whose request is still running
	PendingValue = "\x00pending"

	DefaultTTL      = 24 * time.Hour
	DefaultCapacity = 10000
)

const (
	ErrMsgInFlight      = "a request with this idempotency key is still in progress"
	ErrMsgRedisBegin    = "failed to reserve idempotency key"
	ErrMsgRedisComplete = "failed to complete idempotency key"
	ErrMsgRedisRelease  = "failed to release idempotency key"
	ErrMsgRedisConnect  = "failed to connect to redis"
)
