package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/Stockpile_Go/internal/inventory"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// SyncInventories loads, validates, and syncs the inventory seed file to the database.
// Hash based change detection skips the sync when the file is unchanged since the
// last run. A missing file is not an error: the service starts with whatever the
// database already holds.
func SyncInventories(ctx context.Context, repo repository.Inventory, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Info(LogMsgSeedFileMissing, "path", path)
		return nil
	}

	slog.Info(LogMsgSyncingInventories, "path", path)
	loader := inventory.NewLoader()

	seed, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadInventories, err)
	}

	if err := loader.Validate(seed); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidInventories, err)
	}

	result, err := loader.SyncToDatabase(ctx, seed, repo, path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncInventories, err)
	}

	if result.InventoriesCreated > 0 || result.FieldsAdded > 0 {
		slog.Info(LogMsgInventoriesSynced,
			"created", result.InventoriesCreated,
			"skipped", result.InventoriesSkipped,
			"fields_added", result.FieldsAdded)
	} else {
		slog.Info(LogMsgInventoriesUnchanged)
	}

	return nil
}
