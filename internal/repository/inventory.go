package repository

import (
	"context"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

// Inventory defines the interface for inventory and template persistence
type Inventory interface {
	// CreateInventory stores the inventory with its fields and fills in the generated IDs
	CreateInventory(ctx context.Context, inventory *domain.Inventory) error
	GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error)
	GetInventoryByTitle(ctx context.Context, title string) (*domain.Inventory, error)
	ListInventories(ctx context.Context) ([]domain.Inventory, error)
	UpdateIDFormat(ctx context.Context, inventoryID string, format domain.IDFormat) error
	AddField(ctx context.Context, inventoryID string, field *domain.FieldDefinition) error

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
