package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(ItemCreated, func(ctx context.Context, evt Event) error {
		got = evt
		return nil
	})

	evt := NewItemCreatedEvent("item-1", "inv-1", "LAP-001", 1, "alice")
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, ItemCreated, got.Type)
	assert.Equal(t, EventSchemaVersion, got.Version)

	payload, err := DecodePayload[ItemCreatedPayloadV1](got.Payload)
	require.NoError(t, err)
	assert.Equal(t, "LAP-001", payload.CustomID)
	assert.Equal(t, int64(1), payload.SequenceNumber)
}

func TestMemoryBus_MultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}

	bus.Subscribe(ItemUpdated, handler)
	bus.Subscribe(ItemUpdated, handler)
	bus.Subscribe(ItemDeleted, handler)

	require.NoError(t, bus.Publish(context.Background(), NewItemUpdatedEvent("item-1", "inv-1", 2, 1)))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), NewItemDeletedEvent("item-1")))
}

func TestMemoryBus_HandlerErrorsJoined(t *testing.T) {
	bus := NewMemoryBus()
	called := 0
	bus.Subscribe(ItemDeleted, func(ctx context.Context, evt Event) error {
		called++
		return errors.New("handler error")
	})
	bus.Subscribe(ItemDeleted, func(ctx context.Context, evt Event) error {
		called++
		return nil
	})

	err := bus.Publish(context.Background(), NewItemDeletedEvent("item-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.Equal(t, 2, called, "a failing handler does not stop the others")
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{
		"item_id":          "item-1",
		"sequence_changed": true,
		"new_sequence":     float64(42),
	}
	payload, err := DecodePayload[CustomIDEditedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "item-1", payload.ItemID)
	assert.True(t, payload.SequenceChanged)
	assert.Equal(t, int64(42), payload.NewSequence)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := RetryInitialDelay
	assert.Equal(t, base, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*base, CalculateRetryDelay(base, 3))
	assert.Equal(t, base, CalculateRetryDelay(base, 0))
}
