package inventory

// ==================== Limits ====================

const (
	// MaxTitleLength bounds inventory titles, in runes
	MaxTitleLength = 200
	// MaxFieldTitleLength bounds field titles, in runes
	MaxFieldTitleLength = 100
)

// ==================== Configuration Files ====================

const (
	// DefaultConfigPath is the seed file read at startup
	DefaultConfigPath = "configs/inventories.json"
)

// ==================== Error Messages ====================

// Input validation messages
const (
	ErrMsgTitleRequired      = "title is required"
	ErrMsgTitleTooLong       = "title is too long"
	ErrMsgFieldTitleRequired = "field title is required"
	ErrFmtFieldTitleTooLong  = "%w: field %q title is too long"
	ErrFmtFieldTypeInvalid   = "%w: field %q has unknown type %q"
	ErrFmtFieldDuplicate     = "%w: field %q is defined twice"
)

// Loader error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read inventories config file"
	ErrMsgParseConfigFailed    = "failed to parse inventories config"
	ErrMsgSchemaFailed         = "schema validation failed"
	ErrMsgStatConfigFileFailed = "failed to stat config file"
	ErrMsgCheckFileChanged     = "failed to check if file changed"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoInventoriesDefined = "no inventories defined"
	ErrFmtDuplicateTitle       = "%w: inventory %q is defined twice"
	ErrFmtInventoryInvalid     = "%w: inventory %q"
	ErrFmtCreateFailed         = "failed to create inventory %q: %w"
	ErrFmtLookupFailed         = "failed to look up inventory %q: %w"
	ErrFmtAddFieldFailed       = "failed to add field %q to inventory %q: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgInventoryCreated     = "Inventory created"
	LogMsgIDFormatUpdated      = "Inventory id format updated"
	LogMsgFieldAdded           = "Inventory field added"
	LogMsgConfigUnchanged      = "Inventories config file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Inventories sync completed"
	LogMsgSeededInventory      = "Seeded inventory"
	LogMsgSeededField          = "Seeded field"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
)
