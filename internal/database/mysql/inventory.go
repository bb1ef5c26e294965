package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

// InventoryRepository implements repository.Inventory for MySQL
type InventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func encodeFormat(format domain.IDFormat) ([]byte, error) {
	if format == nil {
		format = domain.IDFormat{}
	}
	return json.Marshal(format)
}

// CreateInventory stores the inventory and its fields in one transaction
func (r *InventoryRepository) CreateInventory(ctx context.Context, inv *domain.Inventory) error {
	format, err := encodeFormat(inv.IDFormat)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateInventory, err)
	}
	id := inv.ID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO inventories (inventory_id, title, id_format, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		id, inv.Title, format, now, now)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateInventory, mapError(err))
	}

	for i := range inv.Fields {
		if err := insertField(ctx, tx, id, &inv.Fields[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, mapError(err))
	}

	inv.ID = id
	inv.CreatedAt = now
	inv.UpdatedAt = now
	return nil
}

func insertField(ctx context.Context, q queryer, inventoryID string, f *domain.FieldDefinition) error {
	result, err := q.ExecContext(ctx,
		"INSERT INTO inventory_fields (inventory_id, title, field_type, position) VALUES (?, ?, ?, ?)",
		inventoryID, f.Title, string(f.Type), f.Position)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateField, mapError(err))
	}
	fieldID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateField, err)
	}
	f.ID = int(fieldID)
	f.InventoryID = inventoryID
	return nil
}

// GetInventory retrieves an inventory with its field definitions
func (r *InventoryRepository) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	return getInventory(ctx, r.db, inventoryID)
}

// GetInventoryByTitle retrieves an inventory by its unique title
func (r *InventoryRepository) GetInventoryByTitle(ctx context.Context, title string) (*domain.Inventory, error) {
	inv, err := scanInventory(r.db.QueryRowContext(ctx,
		"SELECT "+inventoryColumns+" FROM inventories WHERE title = ?", title))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, mapError(err))
	}
	if err := loadFields(ctx, r.db, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListInventories returns every inventory ordered by title
func (r *InventoryRepository) ListInventories(ctx context.Context) ([]domain.Inventory, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+inventoryColumns+" FROM inventories ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventories, mapError(err))
	}

	var result []domain.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventories, err)
		}
		result = append(result, *inv)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventories, err)
	}

	for i := range result {
		if err := loadFields(ctx, r.db, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// UpdateIDFormat replaces the inventory's ID template
func (r *InventoryRepository) UpdateIDFormat(ctx context.Context, inventoryID string, format domain.IDFormat) error {
	if err := checkID(inventoryID, domain.ErrInventoryNotFound); err != nil {
		return err
	}
	raw, err := encodeFormat(format)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFormat, err)
	}

	// MySQL reports matched rows as affected only with CLIENT_FOUND_ROWS, so check existence explicitly
	if _, err := getInventory(ctx, r.db, inventoryID); err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"UPDATE inventories SET id_format = ?, updated_at = ? WHERE inventory_id = ?",
		raw, time.Now().UTC(), inventoryID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFormat, mapError(err))
	}
	return nil
}

// AddField appends a field definition to an existing inventory
func (r *InventoryRepository) AddField(ctx context.Context, inventoryID string, field *domain.FieldDefinition) error {
	if err := checkID(inventoryID, domain.ErrInventoryNotFound); err != nil {
		return err
	}
	return insertField(ctx, r.db, inventoryID, field)
}

// GetSyncMetadata retrieves sync metadata for a config file
func (r *InventoryRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := r.db.QueryRowContext(ctx,
		"SELECT config_name, last_sync_time, file_hash, file_mod_time FROM sync_metadata WHERE config_name = ?",
		configName).Scan(&meta.ConfigName, &meta.LastSyncTime, &meta.FileHash, &meta.FileModTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a config file
func (r *InventoryRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time) VALUES (?, ?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE last_sync_time = VALUES(last_sync_time), file_hash = VALUES(file_hash), file_mod_time = VALUES(file_mod_time)",
		metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash, metadata.FileModTime)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSyncMetadata, err)
	}
	return nil
}
