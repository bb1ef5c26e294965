package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Stockpile_Go/internal/event"
	"github.com/osse101/Stockpile_Go/internal/logger"
	"github.com/osse101/Stockpile_Go/internal/metrics"
)

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event based counters)
// - Audit logger (custom ID edits and template changes)
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.ItemCustomIDEdited, auditCustomIDEdit)
	bus.Subscribe(event.InventoryIDFormatChanged, auditIDFormatChange)
	slog.Info(LogMsgAuditLoggerRegistered)
}

func auditCustomIDEdit(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CustomIDEditedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCustomIDEdited,
		"item_id", payload.ItemID,
		"inventory_id", payload.InventoryID,
		"old_custom_id", payload.OldCustomID,
		"new_custom_id", payload.NewCustomID,
		"sequence_changed", payload.SequenceChanged)
	return nil
}

func auditIDFormatChange(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.IDFormatChangedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgIDFormatChanged,
		"inventory_id", payload.InventoryID,
		"segments", payload.SegmentCount,
		"has_sequence", payload.HasSequence)
	return nil
}
