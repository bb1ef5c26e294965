package domain

import "time"

// FieldType is the value type of a custom inventory field
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldMultiline FieldType = "multiline"
	FieldNumber    FieldType = "number"
	FieldLink      FieldType = "link"
	FieldBoolean   FieldType = "boolean"
)

// IsValid reports whether t is a known field type
func (t FieldType) IsValid() bool {
	switch t {
	case FieldText, FieldMultiline, FieldNumber, FieldLink, FieldBoolean:
		return true
	}
	return false
}

// FieldDefinition describes a custom field every item of an inventory carries
type FieldDefinition struct {
	ID          int       `json:"id" db:"field_id"`
	InventoryID string    `json:"inventory_id" db:"inventory_id"`
	Title       string    `json:"title" db:"title"`
	Type        FieldType `json:"type" db:"field_type"`
	Position    int       `json:"position" db:"position"`
}

// Inventory owns a custom ID template and a set of field definitions.
// Changing IDFormat never rewrites IDs of existing items.
type Inventory struct {
	ID        string            `json:"id" db:"inventory_id"`
	Title     string            `json:"title" db:"title"`
	IDFormat  IDFormat          `json:"id_format" db:"id_format"`
	Fields    []FieldDefinition `json:"fields"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

// Field looks up a field definition by ID
func (inv *Inventory) Field(fieldID int) (FieldDefinition, bool) {
	for _, f := range inv.Fields {
		if f.ID == fieldID {
			return f, true
		}
	}
	return FieldDefinition{}, false
}
