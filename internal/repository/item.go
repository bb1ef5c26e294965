package repository

import (
	"context"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

// Item defines the interface for item persistence.
// BeginTx always opens a SERIALIZABLE transaction.
type Item interface {
	BeginTx(ctx context.Context) (ItemTx, error)

	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error)
	// CustomIDExists ignores the item identified by excludeItemID when it is not empty
	CustomIDExists(ctx context.Context, inventoryID, customID, excludeItemID string) (bool, error)
	// DeleteItem never makes the deleted sequence number available again
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemTx defines the operations available inside an item transaction.
// InsertItem and SaveItem return domain.ErrCustomIDTaken on a unique
// violation of (inventory_id, custom_id). Any operation, including Commit,
// may return domain.ErrSerializationFailure.
type ItemTx interface {
	Tx
	GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error)
	// MaxSequence returns the larger of the highest stored sequence number and
	// the highest deleted one, and false when neither exists yet
	MaxSequence(ctx context.Context, inventoryID string) (int64, bool, error)
	InsertItem(ctx context.Context, item *domain.Item) error
	// FindItemForUpdate locks the item row until the transaction ends
	FindItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error)
	// SaveItem writes custom_id and sequence_number and bumps the version,
	// failing with domain.ErrVersionConflict when the stored version is not expectedVersion
	SaveItem(ctx context.Context, item *domain.Item, expectedVersion int) error
	UpsertFieldValues(ctx context.Context, itemID string, values []domain.FieldValue) error
}
