package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/event"
	"github.com/osse101/Stockpile_Go/internal/idempotency"
	"github.com/osse101/Stockpile_Go/internal/logger"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// withTx executes a function within a serializable transaction.
// It handles begin, commit, and rollback automatically.
func (s *service) withTx(ctx context.Context, operation func(tx repository.ItemTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error(LogMsgBeginTxFailed, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := operation(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if !errors.Is(err, domain.ErrSerializationFailure) {
			log.Error(LogMsgCommitTxFailed, "error", err)
		}
		return fmt.Errorf("%s: %w", ErrMsgCommitTxFailed, err)
	}

	return nil
}

// idempotencyKey scopes the client key to the inventory, "" when none was sent
func idempotencyKey(input CreateItemInput) string {
	if input.IdempotencyKey == "" {
		return ""
	}
	return input.InventoryID + IdempotencyKeySeparator + input.IdempotencyKey
}

// reserveKey returns the item ID of an earlier completed request, or "" once
// the key is reserved for this one
func (s *service) reserveKey(ctx context.Context, key string) (string, error) {
	if s.idem == nil {
		return "", nil
	}
	existingID, err := s.idem.Begin(ctx, key)
	if err != nil {
		if errors.Is(err, idempotency.ErrInFlight) {
			return "", domain.ErrDuplicateRequest
		}
		return "", fmt.Errorf("%s: %w", ErrMsgIdempotencyFailed, err)
	}
	return existingID, nil
}

// finishKey records the created item for key, or frees key after a failure
// so that the client may try again
func (s *service) finishKey(ctx context.Context, key string, item *domain.Item, createErr error) {
	if s.idem == nil || key == "" {
		return
	}
	log := logger.FromContext(ctx)

	if createErr != nil {
		if err := s.idem.Release(ctx, key); err != nil {
			log.Warn(LogMsgReleaseKeyFailed, "key", key, "error", err)
		}
		return
	}
	if err := s.idem.Complete(ctx, key, item.ID); err != nil {
		log.Warn(LogMsgCompleteKeyFailed, "key", key, "error", err)
	}
}

// publish hands evt to the publisher; it never fails the caller
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}
