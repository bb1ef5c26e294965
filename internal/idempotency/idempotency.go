// Package idempotency remembers which Idempotency-Key produced which item so
// that a retried create request returns the original item instead of a new one.
package idempotency

import (
	"context"
	"errors"
)

// ErrInFlight is returned when a request with the same key has not finished yet
var ErrInFlight = errors.New(ErrMsgInFlight)

// Store tracks idempotency keys through pending and completed states
type Store interface {
	// Begin reserves key. It returns the item ID recorded by an earlier
	// completed request, "" when the key was free, or ErrInFlight.
	Begin(ctx context.Context, key string) (string, error)
	// Complete records the item created for key
	Complete(ctx context.Context, key, itemID string) error
	// Release frees a pending key after a failed request
	Release(ctx context.Context, key string) error
}
