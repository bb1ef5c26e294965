package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/Stockpile_Go/internal/database/generated"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// ItemRepository implements repository.Item for PostgreSQL using sqlc
type ItemRepository struct {
	db DB
	q  *generated.Queries
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db DB) *ItemRepository {
	return &ItemRepository{
		db: db,
		q:  generated.New(db),
	}
}

// BeginTx starts a serializable transaction
func (r *ItemRepository) BeginTx(ctx context.Context) (repository.ItemTx, error) {
	tx, err := r.db.BeginTx(ctx, serializable)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, mapError(err))
	}
	return &ItemTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

// GetItem retrieves an item with its field values
func (r *ItemRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	return getItem(ctx, r.q, itemID, false)
}

// GetInventory retrieves an inventory with its field definitions
func (r *ItemRepository) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	return getInventory(ctx, r.q, inventoryID)
}

// CustomIDExists reports whether customID is used by another item of the inventory
func (r *ItemRepository) CustomIDExists(ctx context.Context, inventoryID, customID, excludeItemID string) (bool, error) {
	invID, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return false, err
	}

	exclude := uuid.Nil
	if excludeItemID != "" {
		if exclude, err = uuid.Parse(excludeItemID); err != nil {
			return false, fmt.Errorf("%w: %s", domain.ErrItemNotFound, excludeItemID)
		}
	}

	taken, err := r.q.CustomIDExists(ctx, generated.CustomIDExistsParams{
		InventoryID: invID,
		CustomID:    customID,
		ItemID:      exclude,
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckCustomID, mapError(err))
	}
	return taken, nil
}

// DeleteItem removes an item and its field values and raises the inventory's
// sequence floor to the deleted number
func (r *ItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	id, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return err
	}

	n, err := r.q.DeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, mapError(err))
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ItemTx implements repository.ItemTx for PostgreSQL
type ItemTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// Commit commits the transaction
func (t *ItemTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, mapError(err))
	}
	return nil
}

// Rollback rolls back the transaction
func (t *ItemTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}

// GetInventory reads the inventory inside the transaction
func (t *ItemTx) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	return getInventory(ctx, t.q, inventoryID)
}

// MaxSequence returns the highest sequence number stored for the inventory
func (t *ItemTx) MaxSequence(ctx context.Context, inventoryID string) (int64, bool, error) {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return 0, false, err
	}

	row, err := t.q.GetMaxSequence(ctx, id)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrMsgFailedToGetMaxSequence, mapError(err))
	}
	return row.MaxSequence, row.ItemCount > 0 || row.MaxSequence > 0, nil
}

// InsertItem stores a new item; ID, inventory, custom ID and sequence must be set
func (t *ItemTx) InsertItem(ctx context.Context, item *domain.Item) error {
	itemID, err := uuid.Parse(item.ID)
	if err != nil {
		return fmt.Errorf("%w: item id %q", domain.ErrInvalidInput, item.ID)
	}
	invID, err := parseID(item.InventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return err
	}
	if item.Version == 0 {
		item.Version = domain.InitialItemVersion
	}

	row, err := t.q.InsertItem(ctx, generated.InsertItemParams{
		ItemID:         itemID,
		InventoryID:    invID,
		CustomID:       item.CustomID,
		SequenceNumber: item.SequenceNumber,
		Version:        int32(item.Version),
		CreatedBy:      strToText(item.CreatedBy),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, mapError(err))
	}

	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

// FindItemForUpdate reads and locks an item row
func (t *ItemTx) FindItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error) {
	return getItem(ctx, t.q, itemID, true)
}

// SaveItem writes the custom ID and sequence number guarded by expectedVersion
func (t *ItemTx) SaveItem(ctx context.Context, item *domain.Item, expectedVersion int) error {
	id, err := parseID(item.ID, domain.ErrItemNotFound)
	if err != nil {
		return err
	}

	row, err := t.q.UpdateItemVersioned(ctx, generated.UpdateItemVersionedParams{
		ItemID:         id,
		CustomID:       item.CustomID,
		SequenceNumber: item.SequenceNumber,
		Version:        int32(expectedVersion),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: expected version %d", domain.ErrVersionConflict, expectedVersion)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, mapError(err))
	}

	item.Version = int(row.Version)
	item.UpdatedAt = row.UpdatedAt
	return nil
}

// UpsertFieldValues writes typed field values in one statement
func (t *ItemTx) UpsertFieldValues(ctx context.Context, itemID string, values []domain.FieldValue) error {
	if len(values) == 0 {
		return nil
	}
	id, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return err
	}

	b := psql.Insert(TableItemFieldValues).
		Columns(ColItemID, ColFieldID, ColTextValue, ColNumberValue, ColBoolValue)
	for _, v := range values {
		b = b.Values(id, int32(v.FieldID), v.Text, v.Number, v.Bool)
	}

	query, args, err := b.Suffix(UpsertFieldValuesSuffix).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildUpsert, err)
	}

	if _, err := t.tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertValues, mapError(err))
	}
	return nil
}
