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

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db DB
	q  *generated.Queries
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db DB) *InventoryRepository {
	return &InventoryRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CreateInventory stores the inventory and its fields in one transaction
func (r *InventoryRepository) CreateInventory(ctx context.Context, inv *domain.Inventory) error {
	format, err := encodeFormat(inv.IDFormat)
	if err != nil {
		return err
	}

	id := uuid.New()
	if inv.ID != "" {
		if id, err = uuid.Parse(inv.ID); err != nil {
			return fmt.Errorf("%w: inventory id %q", domain.ErrInvalidInput, inv.ID)
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	row, err := q.CreateInventory(ctx, generated.CreateInventoryParams{
		InventoryID: id,
		Title:       inv.Title,
		IDFormat:    format,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateInventory, mapError(err))
	}

	for i := range inv.Fields {
		f := &inv.Fields[i]
		fieldID, err := q.CreateInventoryField(ctx, generated.CreateInventoryFieldParams{
			InventoryID: id,
			Title:       f.Title,
			FieldType:   string(f.Type),
			Position:    int32(f.Position),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToCreateField, mapError(err))
		}
		f.ID = int(fieldID)
		f.InventoryID = id.String()
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, mapError(err))
	}

	inv.ID = id.String()
	inv.CreatedAt = row.CreatedAt
	inv.UpdatedAt = row.UpdatedAt
	return nil
}

// GetInventory retrieves an inventory with its field definitions
func (r *InventoryRepository) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	return getInventory(ctx, r.q, inventoryID)
}

// GetInventoryByTitle retrieves an inventory by its unique title
func (r *InventoryRepository) GetInventoryByTitle(ctx context.Context, title string) (*domain.Inventory, error) {
	row, err := r.q.GetInventoryByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, mapError(err))
	}
	return withFields(ctx, r.q, row)
}

// ListInventories returns every inventory ordered by title
func (r *InventoryRepository) ListInventories(ctx context.Context) ([]domain.Inventory, error) {
	rows, err := r.q.ListInventories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventories, mapError(err))
	}

	result := make([]domain.Inventory, 0, len(rows))
	for _, row := range rows {
		inv, err := withFields(ctx, r.q, row)
		if err != nil {
			return nil, err
		}
		result = append(result, *inv)
	}
	return result, nil
}

// UpdateIDFormat replaces the inventory's ID template
func (r *InventoryRepository) UpdateIDFormat(ctx context.Context, inventoryID string, format domain.IDFormat) error {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return err
	}
	raw, err := encodeFormat(format)
	if err != nil {
		return err
	}

	n, err := r.q.UpdateInventoryIDFormat(ctx, generated.UpdateInventoryIDFormatParams{
		InventoryID: id,
		IDFormat:    raw,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateFormat, mapError(err))
	}
	if n == 0 {
		return domain.ErrInventoryNotFound
	}
	return nil
}

// AddField appends a field definition to an existing inventory
func (r *InventoryRepository) AddField(ctx context.Context, inventoryID string, field *domain.FieldDefinition) error {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return err
	}

	fieldID, err := r.q.CreateInventoryField(ctx, generated.CreateInventoryFieldParams{
		InventoryID: id,
		Title:       field.Title,
		FieldType:   string(field.Type),
		Position:    int32(field.Position),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateField, mapError(err))
	}

	field.ID = int(fieldID)
	field.InventoryID = inventoryID
	return nil
}

// GetSyncMetadata retrieves sync metadata for a config file
func (r *InventoryRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	row, err := r.q.GetSyncMetadata(ctx, configName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, mapError(err))
	}

	return &domain.SyncMetadata{
		ConfigName:   row.ConfigName,
		LastSyncTime: row.LastSyncTime,
		FileHash:     row.FileHash,
		FileModTime:  row.FileModTime,
	}, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a config file
func (r *InventoryRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	err := r.q.UpsertSyncMetadata(ctx, generated.UpsertSyncMetadataParams{
		ConfigName:   metadata.ConfigName,
		LastSyncTime: metadata.LastSyncTime,
		FileHash:     metadata.FileHash,
		FileModTime:  metadata.FileModTime,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSyncMetadata, mapError(err))
	}
	return nil
}
