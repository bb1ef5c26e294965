package metrics

import (
	"context"

	"github.com/osse101/Stockpile_Go/internal/event"
	"github.com/osse101/Stockpile_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the services publish
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemCreated:
		ItemsCreated.Inc()
	case event.ItemUpdated:
		ItemUpdates.Inc()
	case event.ItemCustomIDEdited:
		if _, err := event.DecodePayload[event.CustomIDEditedPayloadV1](evt.Payload); err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		CustomIDEdits.WithLabelValues(EditOutcomeAccepted).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordConflict counts a rejected write of the given kind
func RecordConflict(kind string) {
	ItemConflicts.WithLabelValues(kind).Inc()
}

// RecordEditRejected counts a custom ID edit refused by the validator
func RecordEditRejected() {
	CustomIDEdits.WithLabelValues(EditOutcomeRejected).Inc()
}
