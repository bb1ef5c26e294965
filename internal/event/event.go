package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a domain event published after a transaction commits
type Event struct {
	Version  string         `json:"version"`
	Type     Type           `json:"type"`
	Payload  interface{}    `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Item and inventory event types
const (
	ItemCreated              Type = "item.created"
	ItemUpdated              Type = "item.updated"
	ItemCustomIDEdited       Type = "item.custom_id_edited"
	ItemDeleted              Type = "item.deleted"
	InventoryIDFormatChanged Type = "inventory.id_format_changed"
)

// AllTypes lists every event type the services publish
var AllTypes = []Type{
	ItemCreated,
	ItemUpdated,
	ItemCustomIDEdited,
	ItemDeleted,
	InventoryIDFormatChanged,
}

// ItemCreatedPayloadV1 is the payload for item.created
type ItemCreatedPayloadV1 struct {
	ItemID         string `json:"item_id"`
	InventoryID    string `json:"inventory_id"`
	CustomID       string `json:"custom_id"`
	SequenceNumber int64  `json:"sequence_number"`
	CreatedBy      string `json:"created_by,omitempty"`
	Timestamp      int64  `json:"timestamp"`
}

// ItemUpdatedPayloadV1 is the payload for item.updated
type ItemUpdatedPayloadV1 struct {
	ItemID        string `json:"item_id"`
	InventoryID   string `json:"inventory_id"`
	Version       int    `json:"version"`
	FieldsChanged int    `json:"fields_changed"`
	Timestamp     int64  `json:"timestamp"`
}

// CustomIDEditedPayloadV1 is the payload for item.custom_id_edited
type CustomIDEditedPayloadV1 struct {
	ItemID          string `json:"item_id"`
	InventoryID     string `json:"inventory_id"`
	OldCustomID     string `json:"old_custom_id"`
	NewCustomID     string `json:"new_custom_id"`
	SequenceChanged bool   `json:"sequence_changed"`
	NewSequence     int64  `json:"new_sequence,omitempty"`
	Timestamp       int64  `json:"timestamp"`
}

// ItemDeletedPayloadV1 is the payload for item.deleted
type ItemDeletedPayloadV1 struct {
	ItemID    string `json:"item_id"`
	Timestamp int64  `json:"timestamp"`
}

// IDFormatChangedPayloadV1 is the payload for inventory.id_format_changed
type IDFormatChangedPayloadV1 struct {
	InventoryID  string `json:"inventory_id"`
	SegmentCount int    `json:"segment_count"`
	HasSequence  bool   `json:"has_sequence"`
	Timestamp    int64  `json:"timestamp"`
}

// NewItemCreatedEvent creates an item.created event
func NewItemCreatedEvent(itemID, inventoryID, customID string, sequence int64, createdBy string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemCreated,
		Payload: ItemCreatedPayloadV1{
			ItemID:         itemID,
			InventoryID:    inventoryID,
			CustomID:       customID,
			SequenceNumber: sequence,
			CreatedBy:      createdBy,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewItemUpdatedEvent creates an item.updated event
func NewItemUpdatedEvent(itemID, inventoryID string, version, fieldsChanged int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUpdated,
		Payload: ItemUpdatedPayloadV1{
			ItemID:        itemID,
			InventoryID:   inventoryID,
			Version:       version,
			FieldsChanged: fieldsChanged,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewCustomIDEditedEvent creates an item.custom_id_edited event
func NewCustomIDEditedEvent(itemID, inventoryID, oldID, newID string, sequenceChanged bool, newSequence int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemCustomIDEdited,
		Payload: CustomIDEditedPayloadV1{
			ItemID:          itemID,
			InventoryID:     inventoryID,
			OldCustomID:     oldID,
			NewCustomID:     newID,
			SequenceChanged: sequenceChanged,
			NewSequence:     newSequence,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// NewItemDeletedEvent creates an item.deleted event
func NewItemDeletedEvent(itemID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemDeleted,
		Payload: ItemDeletedPayloadV1{
			ItemID:    itemID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewIDFormatChangedEvent creates an inventory.id_format_changed event
func NewIDFormatChangedEvent(inventoryID string, segmentCount int, hasSequence bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InventoryIDFormatChanged,
		Payload: IDFormatChangedPayloadV1{
			InventoryID:  inventoryID,
			SegmentCount: segmentCount,
			HasSequence:  hasSequence,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is what the services depend on; publishing never fails the caller
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
