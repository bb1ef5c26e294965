package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// ItemRepository implements repository.Item for MySQL
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// BeginTx starts a serializable transaction
func (r *ItemRepository) BeginTx(ctx context.Context) (repository.ItemTx, error) {
	tx, err := r.db.BeginTx(ctx, serializable)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, mapError(err))
	}
	return &ItemTx{tx: tx}, nil
}

// GetItem retrieves an item with its field values
func (r *ItemRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	return getItem(ctx, r.db, itemID, false)
}

// GetInventory retrieves an inventory with its field definitions
func (r *ItemRepository) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	return getInventory(ctx, r.db, inventoryID)
}

// CustomIDExists reports whether customID is used by another item of the inventory
func (r *ItemRepository) CustomIDExists(ctx context.Context, inventoryID, customID, excludeItemID string) (bool, error) {
	if err := checkID(inventoryID, domain.ErrInventoryNotFound); err != nil {
		return false, err
	}

	var taken bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM items WHERE inventory_id = ? AND custom_id = ? AND item_id <> ?)",
		inventoryID, customID, excludeItemID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckCustomID, mapError(err))
	}
	return taken, nil
}

// DeleteItem removes an item and its field values and raises the inventory's
// sequence floor to the deleted number
func (r *ItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	if err := checkID(itemID, domain.ErrItemNotFound); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, mapError(err))
	}
	defer repository.SafeRollback(ctx, &ItemTx{tx: tx})

	var (
		inventoryID string
		seq         int64
	)
	err = tx.QueryRowContext(ctx,
		"SELECT inventory_id, sequence_number FROM items WHERE item_id = ? FOR UPDATE",
		itemID).Scan(&inventoryID, &seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, mapError(err))
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE item_id = ?", itemID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, mapError(err))
	}
	if _, err := tx.ExecContext(ctx, RaiseSequenceFloorQuery, inventoryID, seq); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, mapError(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, mapError(err))
	}
	return nil
}

// ItemTx implements repository.ItemTx for MySQL
type ItemTx struct {
	tx *sql.Tx
}

// Commit commits the transaction
func (t *ItemTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, mapError(err))
	}
	return nil
}

// Rollback rolls back the transaction
func (t *ItemTx) Rollback(ctx context.Context) error {
	return mapError(t.tx.Rollback())
}

// GetInventory reads the inventory inside the transaction
func (t *ItemTx) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	return getInventory(ctx, t.tx, inventoryID)
}

// MaxSequence returns the highest sequence number stored for the inventory
func (t *ItemTx) MaxSequence(ctx context.Context, inventoryID string) (int64, bool, error) {
	if err := checkID(inventoryID, domain.ErrInventoryNotFound); err != nil {
		return 0, false, err
	}

	var (
		maxSeq int64
		count  int64
	)
	err := t.tx.QueryRowContext(ctx,
		MaxSequenceQuery, inventoryID, inventoryID).Scan(&maxSeq, &count)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrMsgFailedToGetMaxSequence, mapError(err))
	}
	return maxSeq, count > 0 || maxSeq > 0, nil
}

// InsertItem stores a new item; ID, inventory, custom ID and sequence must be set
func (t *ItemTx) InsertItem(ctx context.Context, item *domain.Item) error {
	if err := checkID(item.ID, domain.ErrInvalidInput); err != nil {
		return err
	}
	if err := checkID(item.InventoryID, domain.ErrInventoryNotFound); err != nil {
		return err
	}
	if item.Version == 0 {
		item.Version = domain.InitialItemVersion
	}

	now := time.Now().UTC()
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO items (item_id, inventory_id, custom_id, sequence_number, version, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.InventoryID, item.CustomID, item.SequenceNumber, item.Version,
		nullString(item.CreatedBy), now, now)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, mapError(err))
	}

	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

// FindItemForUpdate reads and locks an item row
func (t *ItemTx) FindItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error) {
	return getItem(ctx, t.tx, itemID, true)
}

// SaveItem writes the custom ID and sequence number guarded by expectedVersion
func (t *ItemTx) SaveItem(ctx context.Context, item *domain.Item, expectedVersion int) error {
	if err := checkID(item.ID, domain.ErrItemNotFound); err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := t.tx.ExecContext(ctx,
		"UPDATE items SET custom_id = ?, sequence_number = ?, version = version + 1, updated_at = ? WHERE item_id = ? AND version = ?",
		item.CustomID, item.SequenceNumber, now, item.ID, expectedVersion)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, mapError(err))
	}
	if err := checkVersionedUpdate(result, expectedVersion); err != nil {
		return err
	}

	item.Version = expectedVersion + 1
	item.UpdatedAt = now
	return nil
}

// checkVersionedUpdate turns a guarded UPDATE that touched no row into a version conflict
func checkVersionedUpdate(result sql.Result, expectedVersion int) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, mapError(err))
	}
	if rows == 0 {
		return fmt.Errorf("%w: expected version %d", domain.ErrVersionConflict, expectedVersion)
	}
	return nil
}

// UpsertFieldValues writes typed field values in one statement
func (t *ItemTx) UpsertFieldValues(ctx context.Context, itemID string, values []domain.FieldValue) error {
	if len(values) == 0 {
		return nil
	}
	if err := checkID(itemID, domain.ErrItemNotFound); err != nil {
		return err
	}

	b := sq.Insert(TableItemFieldValues).
		Columns("item_id", "field_id", "text_value", "number_value", "bool_value")
	for _, v := range values {
		b = b.Values(itemID, v.FieldID, v.Text, v.Number, v.Bool)
	}

	query, args, err := b.Suffix(UpsertFieldValuesSuffix).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}
	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertValues, mapError(err))
	}
	return nil
}
