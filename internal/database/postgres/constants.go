package postgres

// PostgreSQL error codes
const (
	PgErrorCodeUniqueViolation      = "23505"
	PgErrorCodeForeignKeyViolation  = "23503"
	PgErrorCodeSerializationFailure = "40001"
	PgErrorCodeDeadlockDetected     = "40P01"
)

// Constraint names from the migrations
const (
	ConstraintItemsCustomID       = "items_inventory_custom_id_key"
	ConstraintInventoriesTitle    = "inventories_title_key"
	ConstraintInventoryFieldTitle = "inventory_fields_inventory_title_key"
)

// Table and column names used by squirrel-built statements
const (
	TableItemFieldValues = "item_field_values"
	ColItemID            = "item_id"
	ColFieldID           = "field_id"
	ColTextValue         = "text_value"
	ColNumberValue       = "number_value"
	ColBoolValue         = "bool_value"

	UpsertFieldValuesSuffix = "ON CONFLICT (item_id, field_id) DO UPDATE SET " +
		"text_value = EXCLUDED.text_value, " +
		"number_value = EXCLUDED.number_value, " +
		"bool_value = EXCLUDED.bool_value"
)

// Error messages
const (
	ErrMsgFailedToBeginTx          = "failed to begin transaction"
	ErrMsgFailedToCommitTx         = "failed to commit transaction"
	ErrMsgFailedToGetInventory     = "failed to get inventory"
	ErrMsgFailedToListInventories  = "failed to list inventories"
	ErrMsgFailedToCreateInventory  = "failed to create inventory"
	ErrMsgFailedToCreateField      = "failed to create inventory field"
	ErrMsgFailedToGetFields        = "failed to get inventory fields"
	ErrMsgFailedToUpdateFormat     = "failed to update id format"
	ErrMsgFailedToEncodeFormat     = "failed to encode id format"
	ErrMsgFailedToDecodeFormat     = "failed to decode id format"
	ErrMsgFailedToGetItem          = "failed to get item"
	ErrMsgFailedToInsertItem       = "failed to insert item"
	ErrMsgFailedToUpdateItem       = "failed to update item"
	ErrMsgFailedToDeleteItem       = "failed to delete item"
	ErrMsgFailedToGetMaxSequence   = "failed to read max sequence"
	ErrMsgFailedToCheckCustomID    = "failed to check custom id"
	ErrMsgFailedToGetFieldValues   = "failed to get item field values"
	ErrMsgFailedToBuildUpsert      = "failed to build field value upsert"
	ErrMsgFailedToUpsertValues     = "failed to upsert field values"
	ErrMsgFailedToGetSyncMetadata  = "failed to get sync metadata"
	ErrMsgFailedToSaveSyncMetadata = "failed to save sync metadata"
)
