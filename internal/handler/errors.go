package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgIdempotencyKeyTooLong = "Idempotency-Key header is too long"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong. Please try again."
	ErrMsgFormatInvalidError     = "The ID format has invalid segments"
	ErrMsgMultipleSequenceError  = "An ID format may contain only one sequence segment"
	ErrMsgEditRejectedError      = "The custom ID does not fit the inventory's ID format"
	ErrMsgSequenceConflictError  = "Another item was created at the same time. Please submit again."
	ErrMsgCustomIDConflictError  = "That custom ID is already used in this inventory"
	ErrMsgVersionConflictError   = "The item was changed by someone else. Reload it and try again."
	ErrMsgDuplicateRequestError  = "A request with this idempotency key is still in progress"
	ErrMsgTitleTakenError        = "An inventory with this title already exists"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgInventoryNotFoundError = "Inventory not found"
)

// Request limits
const (
	HeaderIdempotencyKey    = "Idempotency-Key"
	MaxIdempotencyKeyLength = 200
)

// Log messages
const (
	LogMsgDecodeFailed   = "Failed to decode request"
	LogMsgRequestInvalid = "Request failed validation"
	LogMsgServiceError   = "Service call failed"
	LogMsgClientError    = "Request rejected"
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgReadyzFailed   = "Readiness check failed"
)
