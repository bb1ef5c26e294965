package item

import "time"

// ==================== Field Limits ====================

// Field value limits
const (
	// MaxTextLength bounds single-line text values, in runes
	MaxTextLength = 255
	// MaxMultilineLength bounds multiline text values, in runes
	MaxMultilineLength = 10000
	// MaxLinkLength bounds link values, in bytes
	MaxLinkLength = 2048
)

// ==================== Cache ====================

// Template cache settings
const (
	// DefaultTemplateCacheSize is used when NewService is given a non-positive size
	DefaultTemplateCacheSize = 256
	// TemplateCacheTTL drops compiled templates nobody asked for in a while
	TemplateCacheTTL = 30 * time.Minute
)

// IdempotencyKeySeparator joins the inventory ID and the client key
const IdempotencyKeySeparator = ":"

// ==================== Error Messages ====================

// Error messages (fragments used with error wrapping)
const (
	ErrMsgBeginTxFailed       = "failed to begin transaction"
	ErrMsgCommitTxFailed      = "failed to commit transaction"
	ErrMsgLoadInventoryFailed = "failed to load inventory"
	ErrMsgNextSequenceFailed  = "failed to read next sequence"
	ErrMsgGenerateIDFailed    = "failed to generate custom id"
	ErrMsgInsertItemFailed    = "failed to insert item"
	ErrMsgSaveFieldsFailed    = "failed to save field values"
	ErrMsgSaveItemFailed      = "failed to save item"
	ErrMsgLockItemFailed      = "failed to lock item"
	ErrMsgUniquenessFailed    = "failed to check custom id uniqueness"
	ErrMsgIdempotencyFailed   = "failed to reserve idempotency key"
)

// Field validation messages
const (
	ErrFmtUnknownField     = "%w: field %d does not belong to this inventory"
	ErrFmtTextTooLong      = "%w: field %q exceeds %d characters"
	ErrFmtNotANumber       = "%w: field %q must be a finite number"
	ErrFmtNotABoolean      = "%w: field %q must be true or false"
	ErrFmtNotALink         = "%w: field %q must be an absolute URL"
	ErrFmtUnsupportedField = "%w: field %q has unsupported type %q"
	ErrFmtInvalidVersion   = "%w: version must be at least %d"
	ErrMsgMissingInventory = "inventory id is required"
	ErrMsgMissingItem      = "item id is required"
)

// ==================== Validation Results ====================

// Custom ID pre-check messages
const (
	MsgCustomIDAvailable = "Custom ID is valid and available"
	MsgCustomIDTaken     = "Custom ID is already used by another item in this inventory"
)

// ==================== Log Messages ====================

// Log messages
const (
	LogMsgItemCreated         = "Item created"
	LogMsgItemUpdated         = "Item updated"
	LogMsgItemDeleted         = "Item deleted"
	LogMsgSequenceConflict    = "Sequence conflict on create"
	LogMsgVersionConflict     = "Version conflict on update"
	LogMsgCustomIDConflict    = "Custom id conflict on update"
	LogMsgEditRejected        = "Custom id edit rejected"
	LogMsgIdempotentReplay    = "Returning item from earlier request with same idempotency key"
	LogMsgReleaseKeyFailed    = "Failed to release idempotency key"
	LogMsgCompleteKeyFailed   = "Failed to record idempotency key"
	LogMsgBeginTxFailed       = "Failed to begin transaction"
	LogMsgCommitTxFailed      = "Failed to commit transaction"
	LogMsgInvalidStoredFormat = "Inventory has an invalid id format"
)
