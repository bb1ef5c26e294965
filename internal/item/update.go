package item

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/event"
	"github.com/osse101/Stockpile_Go/internal/logger"
	"github.com/osse101/Stockpile_Go/internal/metrics"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// idEdit remembers what happened to the custom ID during an update
type idEdit struct {
	changed bool
	oldID   string
	result  customid.EditResult
}

// UpdateItem applies an edit made against input.Version.
// A stale version fails with domain.ErrVersionConflict and leaves the item
// untouched. An edited custom ID must keep the structure of the inventory's
// ID format; a changed sequence part becomes the item's sequence number.
func (s *service) UpdateItem(ctx context.Context, itemID string, input UpdateItemInput) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if itemID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingItem)
	}
	if input.Version < domain.InitialItemVersion {
		return nil, fmt.Errorf(ErrFmtInvalidVersion, domain.ErrInvalidInput, domain.InitialItemVersion)
	}

	var (
		item   *domain.Item
		edit   idEdit
		fields int
	)
	err := s.withTx(ctx, func(tx repository.ItemTx) error {
		current, err := tx.FindItemForUpdate(ctx, itemID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgLockItemFailed, err)
		}
		if current.Version != input.Version {
			return fmt.Errorf("%w: expected version %d, current %d", domain.ErrVersionConflict, input.Version, current.Version)
		}

		inv, err := tx.GetInventory(ctx, current.InventoryID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgLoadInventoryFailed, err)
		}

		values, err := parseFieldValues(inv, input.Fields)
		if err != nil {
			return err
		}
		fields = len(values)

		edit, err = s.applyCustomIDEdit(inv, current, input.CustomID)
		if err != nil {
			return err
		}

		if err := tx.UpsertFieldValues(ctx, current.ID, values); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveFieldsFailed, err)
		}
		if err := tx.SaveItem(ctx, current, input.Version); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveItemFailed, err)
		}
		applyFieldValues(current, values)
		item = current
		return nil
	})
	if err != nil {
		return nil, s.classifyUpdateError(ctx, itemID, err)
	}

	log.Info(LogMsgItemUpdated,
		"item_id", item.ID,
		"version", item.Version,
		"custom_id", item.CustomID,
		"sequence", item.SequenceNumber)

	s.publish(ctx, event.NewItemUpdatedEvent(item.ID, item.InventoryID, item.Version, fields))
	if edit.changed {
		s.publish(ctx, event.NewCustomIDEditedEvent(
			item.ID, item.InventoryID, edit.oldID, item.CustomID,
			edit.result.SequenceChanged, edit.result.NewSequence))
	}

	return item, nil
}

// applyCustomIDEdit validates the requested custom ID against the one the
// item carries and writes the accepted value into item
func (s *service) applyCustomIDEdit(inv *domain.Inventory, item *domain.Item, requested *string) (idEdit, error) {
	if requested == nil {
		return idEdit{}, nil
	}
	edited := norm.NFC.String(*requested)
	if edited == item.CustomID {
		return idEdit{}, nil
	}

	result := s.templates.Get(inv.IDFormat).ValidateEdit(item.CustomID, edited)
	if !result.Valid {
		return idEdit{}, &domain.EditRejectedError{Reason: result.Message}
	}

	edit := idEdit{changed: true, oldID: item.CustomID, result: result}
	item.CustomID = edited
	if result.SequenceChanged {
		item.SequenceNumber = result.NewSequence
	}
	return edit, nil
}

// classifyUpdateError turns storage outcomes into the errors callers act on
func (s *service) classifyUpdateError(ctx context.Context, itemID string, err error) error {
	log := logger.FromContext(ctx)

	var rejected *domain.EditRejectedError
	switch {
	case errors.As(err, &rejected):
		log.Info(LogMsgEditRejected, "item_id", itemID, "reason", rejected.Reason)
		metrics.RecordEditRejected()
		return err
	case errors.Is(err, domain.ErrCustomIDTaken):
		log.Info(LogMsgCustomIDConflict, "item_id", itemID)
		metrics.RecordConflict(metrics.ConflictCustomID)
		return fmt.Errorf("%w: item %s", domain.ErrCustomIDConflict, itemID)
	case errors.Is(err, domain.ErrVersionConflict):
		log.Info(LogMsgVersionConflict, "item_id", itemID, "error", err)
		metrics.RecordConflict(metrics.ConflictVersion)
		return err
	case errors.Is(err, domain.ErrSerializationFailure):
		log.Info(LogMsgVersionConflict, "item_id", itemID, "error", err)
		metrics.RecordConflict(metrics.ConflictVersion)
		return fmt.Errorf("%w: item %s was modified concurrently", domain.ErrVersionConflict, itemID)
	}
	return err
}
