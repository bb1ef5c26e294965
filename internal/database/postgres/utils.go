package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/Stockpile_Go/internal/database/generated"
	"github.com/osse101/Stockpile_Go/internal/domain"
)

// DB is the connection the repositories need. *pgxpool.Pool and
// pgxmock.PgxPoolIface both satisfy it.
type DB interface {
	generated.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// serializable is used for every item transaction
var serializable = pgx.TxOptions{IsoLevel: pgx.Serializable}

// parseID parses an entity ID; malformed IDs cannot exist so they map to notFound
func parseID(id string, notFound error) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", notFound, id)
	}
	return u, nil
}

func strToText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func encodeFormat(format domain.IDFormat) ([]byte, error) {
	if format == nil {
		format = domain.IDFormat{}
	}
	b, err := json.Marshal(format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeFormat, err)
	}
	return b, nil
}

func decodeFormat(raw []byte) (domain.IDFormat, error) {
	var format domain.IDFormat
	if len(raw) == 0 {
		return domain.IDFormat{}, nil
	}
	if err := json.Unmarshal(raw, &format); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeFormat, err)
	}
	return format, nil
}

func mapInventory(row generated.Inventory, fields []generated.InventoryField) (*domain.Inventory, error) {
	format, err := decodeFormat(row.IDFormat)
	if err != nil {
		return nil, err
	}

	inv := &domain.Inventory{
		ID:        row.InventoryID.String(),
		Title:     row.Title,
		IDFormat:  format,
		Fields:    make([]domain.FieldDefinition, 0, len(fields)),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for _, f := range fields {
		inv.Fields = append(inv.Fields, domain.FieldDefinition{
			ID:          int(f.FieldID),
			InventoryID: inv.ID,
			Title:       f.Title,
			Type:        domain.FieldType(f.FieldType),
			Position:    int(f.Position),
		})
	}
	return inv, nil
}

func mapItem(row generated.Item, values []generated.GetItemFieldValuesRow) *domain.Item {
	item := &domain.Item{
		ID:             row.ItemID.String(),
		InventoryID:    row.InventoryID.String(),
		CustomID:       row.CustomID,
		SequenceNumber: row.SequenceNumber,
		Version:        int(row.Version),
		CreatedBy:      row.CreatedBy.String,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		Fields:         make(map[int]string, len(values)),
	}
	for _, v := range values {
		switch {
		case v.TextValue.Valid:
			item.Fields[int(v.FieldID)] = v.TextValue.String
		case v.NumberValue.Valid:
			item.Fields[int(v.FieldID)] = strconv.FormatFloat(v.NumberValue.Float64, 'f', -1, 64)
		case v.BoolValue.Valid:
			item.Fields[int(v.FieldID)] = strconv.FormatBool(v.BoolValue.Bool)
		}
	}
	return item
}

// getInventory loads an inventory and its field definitions with q
func getInventory(ctx context.Context, q *generated.Queries, inventoryID string) (*domain.Inventory, error) {
	id, err := parseID(inventoryID, domain.ErrInventoryNotFound)
	if err != nil {
		return nil, err
	}

	row, err := q.GetInventory(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, mapError(err))
	}
	return withFields(ctx, q, row)
}

func withFields(ctx context.Context, q *generated.Queries, row generated.Inventory) (*domain.Inventory, error) {
	fields, err := q.GetInventoryFields(ctx, row.InventoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFields, mapError(err))
	}
	return mapInventory(row, fields)
}

// getItem loads an item and its field values, optionally locking the row
func getItem(ctx context.Context, q *generated.Queries, itemID string, forUpdate bool) (*domain.Item, error) {
	id, err := parseID(itemID, domain.ErrItemNotFound)
	if err != nil {
		return nil, err
	}

	var row generated.Item
	if forUpdate {
		row, err = q.GetItemForUpdate(ctx, id)
	} else {
		row, err = q.GetItem(ctx, id)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, mapError(err))
	}

	values, err := q.GetItemFieldValues(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFieldValues, mapError(err))
	}
	return mapItem(row, values), nil
}
