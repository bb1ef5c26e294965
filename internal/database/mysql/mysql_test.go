package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockpile_Go/internal/database"
	"github.com/osse101/Stockpile_Go/internal/domain"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "custom id duplicate",
			err:  &gomysql.MySQLError{Number: ErNumDupEntry, Message: "Duplicate entry 'x-LAP-001' for key 'items.items_inventory_custom_id_key'"},
			want: domain.ErrCustomIDTaken,
		},
		{
			name: "title duplicate",
			err:  &gomysql.MySQLError{Number: ErNumDupEntry, Message: "Duplicate entry 'Laptops' for key 'inventories.inventories_title_key'"},
			want: domain.ErrInventoryTitleTaken,
		},
		{
			name: "deadlock",
			err:  &gomysql.MySQLError{Number: ErNumLockDeadlock, Message: "Deadlock found when trying to get lock"},
			want: domain.ErrSerializationFailure,
		},
		{
			name: "lock wait timeout",
			err:  &gomysql.MySQLError{Number: ErNumLockWaitTimeout},
			want: domain.ErrSerializationFailure,
		},
		{
			name: "missing parent",
			err:  &gomysql.MySQLError{Number: ErNumNoReferencedRow},
			want: domain.ErrInventoryNotFound,
		},
		{
			name: "finished transaction",
			err:  fmt.Errorf("rollback: %w", sql.ErrTxDone),
			want: repository.ErrTxClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.err), tt.want)
		})
	}

	assert.NoError(t, mapError(nil))
}

// openTestDB connects to MYSQL_DSN and applies migrations, skipping when unset
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		t.Skip("MYSQL_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn, 5, time.Minute, 5*time.Minute)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = database.NewMigrator(db, goose.DialectMySQL).Up(ctx)
	require.NoError(t, err)
	return db
}

type stubResult struct {
	rows int64
	err  error
}

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckVersionedUpdate(t *testing.T) {
	t.Run("one row updated", func(t *testing.T) {
		assert.NoError(t, checkVersionedUpdate(stubResult{rows: 1}, 3))
	})

	t.Run("no row means a stale version", func(t *testing.T) {
		err := checkVersionedUpdate(stubResult{}, 3)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	})

	t.Run("rows affected unavailable", func(t *testing.T) {
		err := checkVersionedUpdate(stubResult{err: errors.New("driver: bad connection")}, 3)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrVersionConflict)
		assert.Contains(t, err.Error(), ErrMsgFailedToUpdateItem)
	})
}

func TestRepositories_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	invRepo := NewInventoryRepository(db)
	repo := NewItemRepository(db)

	inv := &domain.Inventory{
		Title:    "Laptops " + uuid.NewString()[:8],
		IDFormat: domain.IDFormat{{ID: "seq", Type: domain.SegmentSequence, Format: "D3"}},
		Fields: []domain.FieldDefinition{
			{Title: "Weight", Type: domain.FieldNumber},
			{Title: "In service", Type: domain.FieldBoolean, Position: 1},
		},
	}
	require.NoError(t, invRepo.CreateInventory(ctx, inv))
	t.Cleanup(func() {
		db.ExecContext(ctx, "DELETE FROM inventories WHERE inventory_id = ?", inv.ID)
	})

	got, err := invRepo.GetInventory(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.IDFormat, got.IDFormat)
	require.Len(t, got.Fields, 2)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, ok, err := tx.MaxSequence(ctx, inv.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	weight := 2.5
	inService := true
	item := &domain.Item{ID: uuid.NewString(), InventoryID: inv.ID, CustomID: "001", SequenceNumber: 1}
	require.NoError(t, tx.InsertItem(ctx, item))
	require.NoError(t, tx.UpsertFieldValues(ctx, item.ID, []domain.FieldValue{
		{FieldID: inv.Fields[0].ID, Number: &weight},
		{FieldID: inv.Fields[1].ID, Bool: &inService},
	}))
	require.NoError(t, tx.Commit(ctx))

	stored, err := repo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2.5", stored.Fields[inv.Fields[0].ID])
	assert.Equal(t, "true", stored.Fields[inv.Fields[1].ID])

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.FindItemForUpdate(ctx, item.ID)
	require.NoError(t, err)
	locked.CustomID = "042"
	locked.SequenceNumber = 42
	require.NoError(t, tx.SaveItem(ctx, locked, locked.Version))
	assert.ErrorIs(t, tx.SaveItem(ctx, locked, domain.InitialItemVersion), domain.ErrVersionConflict)
	require.NoError(t, tx.Commit(ctx))

	taken, err := repo.CustomIDExists(ctx, inv.ID, "042", "")
	require.NoError(t, err)
	assert.True(t, taken)

	require.NoError(t, repo.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, repo.DeleteItem(ctx, item.ID), domain.ErrItemNotFound)

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	seq, ok, err := tx.MaxSequence(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), seq)
}
