package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

// Open connects to MySQL. parseTime is forced on so DATETIME columns scan into time.Time.
func Open(ctx context.Context, dsn string, maxConns int, maxIdle, maxLife time.Duration) (*sql.DB, error) {
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseDSN, err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseDSN, err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(maxConns)
	db.SetConnMaxIdleTime(maxIdle)
	db.SetConnMaxLifetime(maxLife)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPing, err)
	}

	slog.Default().Info(LogMsgConnected, "max_conns", maxConns)
	return db, nil
}

// queryer is the part of *sql.DB and *sql.Tx the repositories use
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}

const (
	inventoryColumns = "inventory_id, title, id_format, created_at, updated_at"
	itemColumns      = "item_id, inventory_id, custom_id, sequence_number, version, created_by, created_at, updated_at"
)

func checkID(id string, notFound error) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", notFound, id)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInventory(row scanner) (*domain.Inventory, error) {
	var (
		inv    domain.Inventory
		format []byte
	)
	if err := row.Scan(&inv.ID, &inv.Title, &format, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return nil, err
	}
	inv.IDFormat = domain.IDFormat{}
	if len(format) > 0 {
		if err := json.Unmarshal(format, &inv.IDFormat); err != nil {
			return nil, err
		}
	}
	return &inv, nil
}

func loadFields(ctx context.Context, q queryer, inv *domain.Inventory) error {
	rows, err := q.QueryContext(ctx,
		"SELECT field_id, title, field_type, position FROM inventory_fields WHERE inventory_id = ? ORDER BY position, field_id",
		inv.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetFields, err)
	}
	defer rows.Close()

	inv.Fields = []domain.FieldDefinition{}
	for rows.Next() {
		f := domain.FieldDefinition{InventoryID: inv.ID}
		var fieldType string
		if err := rows.Scan(&f.ID, &f.Title, &fieldType, &f.Position); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToGetFields, err)
		}
		f.Type = domain.FieldType(fieldType)
		inv.Fields = append(inv.Fields, f)
	}
	return rows.Err()
}

func getInventory(ctx context.Context, q queryer, inventoryID string) (*domain.Inventory, error) {
	if err := checkID(inventoryID, domain.ErrInventoryNotFound); err != nil {
		return nil, err
	}

	inv, err := scanInventory(q.QueryRowContext(ctx,
		"SELECT "+inventoryColumns+" FROM inventories WHERE inventory_id = ?", inventoryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, mapError(err))
	}
	if err := loadFields(ctx, q, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func getItem(ctx context.Context, q queryer, itemID string, forUpdate bool) (*domain.Item, error) {
	if err := checkID(itemID, domain.ErrItemNotFound); err != nil {
		return nil, err
	}

	query := sq.Select(itemColumns).From("items").Where(sq.Eq{"item_id": itemID})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}
	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var (
		item      domain.Item
		createdBy sql.NullString
	)
	err = q.QueryRowContext(ctx, stmt, args...).Scan(
		&item.ID, &item.InventoryID, &item.CustomID, &item.SequenceNumber,
		&item.Version, &createdBy, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, mapError(err))
	}
	item.CreatedBy = createdBy.String

	if item.Fields, err = getFieldValues(ctx, q, itemID); err != nil {
		return nil, err
	}
	return &item, nil
}

func getFieldValues(ctx context.Context, q queryer, itemID string) (map[int]string, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT field_id, text_value, number_value, bool_value FROM item_field_values WHERE item_id = ?",
		itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFieldValues, mapError(err))
	}
	defer rows.Close()

	values := make(map[int]string)
	for rows.Next() {
		var (
			fieldID int
			text    sql.NullString
			number  sql.NullFloat64
			flag    sql.NullBool
		)
		if err := rows.Scan(&fieldID, &text, &number, &flag); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFieldValues, err)
		}
		switch {
		case text.Valid:
			values[fieldID] = text.String
		case number.Valid:
			values[fieldID] = strconv.FormatFloat(number.Float64, 'f', -1, 64)
		case flag.Valid:
			values[fieldID] = strconv.FormatBool(flag.Bool)
		}
	}
	return values, rows.Err()
}
