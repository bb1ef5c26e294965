package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockpile_Go/internal/testing/leaktest"
)

// flakyBus fails its first `failures` publishes
type flakyBus struct {
	mu       sync.Mutex
	calls    int
	failures int
}

func (b *flakyBus) Publish(ctx context.Context, evt Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.calls <= b.failures {
		return errors.New("bus unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(eventType Type, handler Handler) {}

func (b *flakyBus) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewItemDeletedEvent("item-1"))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failures: 2}

	rp, err := NewResilientPublisher(bus, 5, 5*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewItemDeletedEvent("item-1"))

	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ExhaustedGoesToDeadLetter(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failures: 100}

	rp, err := NewResilientPublisher(bus, 2, time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewItemDeletedEvent("item-1"))

	// one direct attempt plus two retries
	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, ItemDeleted, entries[0].Event.Type)
	assert.Equal(t, "bus unavailable", entries[0].LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)

	// the retry worker is gone once Shutdown returns
	checker.Check(0)
}

func TestResilientPublisher_AfterShutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failures: 100}

	leaktest.CheckNoGoroutineLeak(t, func() {
		rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
		require.NoError(t, err)
		rp.PublishWithRetry(context.Background(), NewItemDeletedEvent("queued"))

		require.NoError(t, rp.Shutdown(context.Background()))
	})

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1, "pending retry is dead-lettered on shutdown")
}
