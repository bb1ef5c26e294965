package item

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/logger"
)

// ValidateCustomID checks a candidate custom ID before the client submits it.
// With itemID the candidate is validated as an edit of that item's current ID,
// otherwise it only has to fit the inventory's ID format. In both cases it must
// not be used by another item of the inventory.
func (s *service) ValidateCustomID(ctx context.Context, inventoryID, candidate, itemID string) (*ValidationResult, error) {
	if inventoryID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingInventory)
	}

	inv, err := s.repo.GetInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	tmpl := s.templates.Get(inv.IDFormat)
	candidate = norm.NFC.String(candidate)

	result := &ValidationResult{Valid: true, Message: MsgCustomIDAvailable}
	if itemID != "" {
		item, err := s.repo.GetItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if item.InventoryID != inv.ID {
			return nil, fmt.Errorf("%w: item %s is not part of inventory %s", domain.ErrItemNotFound, itemID, inventoryID)
		}
		edit := tmpl.ValidateEdit(item.CustomID, candidate)
		if !edit.Valid {
			return &ValidationResult{Valid: false, Message: edit.Message}, nil
		}
		result.SequenceChanged = edit.SequenceChanged
		result.NewSequence = edit.NewSequence
		if edit.SequenceChanged {
			result.Message = edit.Message
		}
	} else if err := tmpl.Match(candidate); err != nil {
		var rejected *domain.EditRejectedError
		if errors.As(err, &rejected) {
			return &ValidationResult{Valid: false, Message: rejected.Reason}, nil
		}
		return nil, err
	}

	taken, err := s.repo.CustomIDExists(ctx, inv.ID, candidate, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUniquenessFailed, err)
	}
	if taken {
		return &ValidationResult{Valid: false, Message: MsgCustomIDTaken}, nil
	}
	return result, nil
}

// PreviewID renders segments as the first item of an empty inventory would see
// them. Invalid segments show up as placeholders and in Issues.
func (s *service) PreviewID(ctx context.Context, segments []domain.IDSegment) Preview {
	tmpl := customid.Compile(segments)

	id, err := s.generator.Generate(tmpl, customid.PreviewSequence)
	if err != nil {
		logger.FromContext(ctx).Warn(ErrMsgGenerateIDFailed, "error", err)
	}
	return Preview{
		ID:      id,
		Pattern: tmpl.Pattern(),
		Issues:  tmpl.Issues(),
	}
}
