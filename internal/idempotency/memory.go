package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore keeps keys in a size-bounded LRU with expiry.
// It only deduplicates requests that reach the same process.
type MemoryStore struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, string]
}

// NewMemoryStore creates a store holding at most capacity keys for ttl
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		lru: expirable.NewLRU[string, string](capacity, nil, ttl),
	}
}

// Begin reserves key
func (s *MemoryStore) Begin(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.lru.Get(key); ok {
		if v == PendingValue {
			return "", ErrInFlight
		}
		return v, nil
	}
	s.lru.Add(key, PendingValue)
	return "", nil
}

// Complete records the item created for key
func (s *MemoryStore) Complete(ctx context.Context, key, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lru.Add(key, itemID)
	return nil
}

// Release frees a pending key
func (s *MemoryStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.lru.Peek(key); ok && v == PendingValue {
		s.lru.Remove(key)
	}
	return nil
}
