package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/event"
	"github.com/osse101/Stockpile_Go/internal/idempotency"
	"github.com/osse101/Stockpile_Go/internal/logger"
	"github.com/osse101/Stockpile_Go/internal/metrics"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// Service defines the item lifecycle interface
type Service interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, itemID string, input UpdateItemInput) (*domain.Item, error)
	ValidateCustomID(ctx context.Context, inventoryID, candidate, itemID string) (*ValidationResult, error)
	PreviewID(ctx context.Context, segments []domain.IDSegment) Preview
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// CreateItemInput holds the data for a new item. The custom ID is always generated.
type CreateItemInput struct {
	InventoryID    string
	Fields         map[int]string
	IdempotencyKey string
	CreatedBy      string
}

// UpdateItemInput holds an edit of an existing item.
// Version must be the version the client last read.
// A nil CustomID leaves the custom ID as it is.
type UpdateItemInput struct {
	Version  int
	Fields   map[int]string
	CustomID *string
}

// ValidationResult is the outcome of a custom ID pre-check
type ValidationResult struct {
	Valid           bool   `json:"valid"`
	Message         string `json:"message"`
	SequenceChanged bool   `json:"sequence_changed,omitempty"`
	NewSequence     int64  `json:"new_sequence,omitempty"`
}

// Preview is a sample ID for a format being edited
type Preview struct {
	ID      string                `json:"id"`
	Pattern string                `json:"pattern"`
	Issues  []domain.SegmentIssue `json:"issues,omitempty"`
}

type service struct {
	repo      repository.Item
	publisher event.Publisher
	idem      idempotency.Store
	templates *templateCache
	generator customid.Generator
}

// NewService creates a new item service.
// publisher and idem may be nil, which disables events and idempotency keys.
func NewService(repo repository.Item, publisher event.Publisher, idem idempotency.Store, templateCacheSize int) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		idem:      idem,
		templates: newTemplateCache(templateCacheSize),
		generator: customid.NewGenerator(),
	}
}

// CreateItem stores a new item with the next sequence number of its inventory.
// Losing a race for that number yields domain.ErrSequenceConflict, which the
// caller may resubmit unchanged.
func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if input.InventoryID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingInventory)
	}

	key := idempotencyKey(input)
	if key != "" {
		existingID, err := s.reserveKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if existingID != "" {
			log.Info(LogMsgIdempotentReplay, "item_id", existingID, "inventory_id", input.InventoryID)
			return s.repo.GetItem(ctx, existingID)
		}
	}

	item, err := s.createItem(ctx, input)
	s.finishKey(ctx, key, item, err)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemCreated,
		"item_id", item.ID,
		"inventory_id", item.InventoryID,
		"custom_id", item.CustomID,
		"sequence", item.SequenceNumber)
	s.publish(ctx, event.NewItemCreatedEvent(item.ID, item.InventoryID, item.CustomID, item.SequenceNumber, item.CreatedBy))

	return item, nil
}

func (s *service) createItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	var item *domain.Item

	err := s.withTx(ctx, func(tx repository.ItemTx) error {
		inv, err := tx.GetInventory(ctx, input.InventoryID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgLoadInventoryFailed, err)
		}

		values, err := parseFieldValues(inv, input.Fields)
		if err != nil {
			return err
		}

		maxSeq, _, err := tx.MaxSequence(ctx, inv.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgNextSequenceFailed, err)
		}
		next := maxSeq + 1

		customID, err := s.generate(ctx, inv, next)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGenerateIDFailed, err)
		}

		item = &domain.Item{
			ID:             uuid.NewString(),
			InventoryID:    inv.ID,
			CustomID:       customID,
			SequenceNumber: next,
			Version:        domain.InitialItemVersion,
			CreatedBy:      input.CreatedBy,
		}
		if err := tx.InsertItem(ctx, item); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgInsertItemFailed, err)
		}
		if err := tx.UpsertFieldValues(ctx, item.ID, values); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveFieldsFailed, err)
		}
		applyFieldValues(item, values)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomIDTaken) || errors.Is(err, domain.ErrSerializationFailure) {
			logger.FromContext(ctx).Warn(LogMsgSequenceConflict, "inventory_id", input.InventoryID, "error", err)
			metrics.RecordConflict(metrics.ConflictSequence)
			return nil, fmt.Errorf("%w: inventory %s", domain.ErrSequenceConflict, input.InventoryID)
		}
		return nil, err
	}
	return item, nil
}

// generate renders the inventory's ID format for seq
func (s *service) generate(ctx context.Context, inv *domain.Inventory, seq int64) (string, error) {
	start := time.Now()
	defer func() {
		metrics.IDGenerationDuration.Observe(time.Since(start).Seconds())
	}()

	tmpl := s.templates.Get(inv.IDFormat)
	if !tmpl.Valid() {
		logger.FromContext(ctx).Warn(LogMsgInvalidStoredFormat, "inventory_id", inv.ID, "issues", tmpl.Issues())
	}
	return s.generator.Generate(tmpl, seq)
}

// GetItem returns an item with its field values
func (s *service) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingItem)
	}
	return s.repo.GetItem(ctx, itemID)
}

// DeleteItem removes an item. Its sequence number is never handed out again,
// including when it was the highest one of the inventory.
func (s *service) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingItem)
	}
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgItemDeleted, "item_id", itemID)
	s.publish(ctx, event.NewItemDeletedEvent(itemID))
	return nil
}
