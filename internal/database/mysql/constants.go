package mysql

// MySQL server error numbers
const (
	ErNumDupEntry          = 1062
	ErNumLockWaitTimeout   = 1205
	ErNumLockDeadlock      = 1213
	ErNumNoReferencedRow   = 1452
	ErNumNoReferencedRowV2 = 1216
)

// Key names from the migrations
const (
	KeyItemsCustomID       = "items_inventory_custom_id_key"
	KeyInventoriesTitle    = "inventories_title_key"
	KeyInventoryFieldTitle = "inventory_fields_inventory_title_key"
)

const (
	DriverName = "mysql"

	MaxSequenceQuery = "SELECT GREATEST(COALESCE(MAX(i.sequence_number), 0), " +
		"COALESCE((SELECT f.sequence_floor FROM item_sequence_floors f WHERE f.inventory_id = ?), 0)), " +
		"COUNT(i.item_id) FROM items i WHERE i.inventory_id = ?"

	RaiseSequenceFloorQuery = "INSERT INTO item_sequence_floors (inventory_id, sequence_floor) VALUES (?, ?) " +
		"ON DUPLICATE KEY UPDATE sequence_floor = GREATEST(sequence_floor, VALUES(sequence_floor))"

	TableItemFieldValues = "item_field_values"

	UpsertFieldValuesSuffix = "ON DUPLICATE KEY UPDATE " +
		"text_value = VALUES(text_value), " +
		"number_value = VALUES(number_value), " +
		"bool_value = VALUES(bool_value)"
)

// Error messages
const (
	ErrMsgFailedToParseDSN         = "failed to parse mysql dsn"
	ErrMsgFailedToPing             = "failed to ping mysql"
	ErrMsgFailedToBeginTx          = "failed to begin transaction"
	ErrMsgFailedToCommitTx         = "failed to commit transaction"
	ErrMsgFailedToGetInventory     = "failed to get inventory"
	ErrMsgFailedToListInventories  = "failed to list inventories"
	ErrMsgFailedToCreateInventory  = "failed to create inventory"
	ErrMsgFailedToCreateField      = "failed to create inventory field"
	ErrMsgFailedToGetFields        = "failed to get inventory fields"
	ErrMsgFailedToUpdateFormat     = "failed to update id format"
	ErrMsgFailedToGetItem          = "failed to get item"
	ErrMsgFailedToInsertItem       = "failed to insert item"
	ErrMsgFailedToUpdateItem       = "failed to update item"
	ErrMsgFailedToDeleteItem       = "failed to delete item"
	ErrMsgFailedToGetMaxSequence   = "failed to read max sequence"
	ErrMsgFailedToCheckCustomID    = "failed to check custom id"
	ErrMsgFailedToGetFieldValues   = "failed to get item field values"
	ErrMsgFailedToBuildQuery       = "failed to build query"
	ErrMsgFailedToUpsertValues     = "failed to upsert field values"
	ErrMsgFailedToGetSyncMetadata  = "failed to get sync metadata"
	ErrMsgFailedToSaveSyncMetadata = "failed to save sync metadata"
)

const LogMsgConnected = "Successfully connected to MySQL"
