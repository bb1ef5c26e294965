package domain

import "time"

// InitialItemVersion is the version a freshly created item starts at
const InitialItemVersion = 1

// Item is a single record of an inventory
type Item struct {
	ID             string         `json:"id" db:"item_id"`
	InventoryID    string         `json:"inventory_id" db:"inventory_id"`
	CustomID       string         `json:"custom_id" db:"custom_id"`
	SequenceNumber int64          `json:"sequence_number" db:"sequence_number"`
	Version        int            `json:"version" db:"version"`
	Fields         map[int]string `json:"fields"`
	CreatedBy      string         `json:"created_by,omitempty" db:"created_by"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// FieldValue is one typed value row of an item.
// Exactly one of Text, Number or Bool is set, matching the field type.
type FieldValue struct {
	FieldID int
	Text    *string
	Number  *float64
	Bool    *bool
}
