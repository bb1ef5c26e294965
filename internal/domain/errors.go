package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Template errors
	ErrMsgFormatInvalid            = "id format is invalid"
	ErrMsgMultipleSequenceSegments = "id format may contain at most one sequence segment"

	// Custom ID errors
	ErrMsgEditRejected      = "custom id edit rejected"
	ErrMsgSequenceConflict  = "sequence conflict, please retry"
	ErrMsgCustomIDConflict  = "custom id already exists in this inventory"
	ErrMsgVersionConflict   = "item was modified by someone else"
	ErrMsgDuplicateRequest  = "request with this idempotency key is already in progress"
	ErrMsgCustomIDTaken     = "custom id unique constraint violated"
	ErrMsgSerialization     = "could not serialize transaction"
	ErrMsgCustomIDMalformed = "custom id does not match the inventory's id format"

	// Lookup errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInventoryNotFound = "inventory not found"

	// Inventory errors
	ErrMsgInventoryTitleTaken = "an inventory with this title already exists"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrFormatInvalid            = errors.New(ErrMsgFormatInvalid)
	ErrMultipleSequenceSegments = errors.New(ErrMsgMultipleSequenceSegments)

	ErrEditRejected     = errors.New(ErrMsgEditRejected)
	ErrSequenceConflict = errors.New(ErrMsgSequenceConflict)
	ErrCustomIDConflict = errors.New(ErrMsgCustomIDConflict)
	ErrVersionConflict  = errors.New(ErrMsgVersionConflict)
	ErrDuplicateRequest = errors.New(ErrMsgDuplicateRequest)

	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrInventoryNotFound = errors.New(ErrMsgInventoryNotFound)

	ErrInventoryTitleTaken = errors.New(ErrMsgInventoryTitleTaken)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Storage-level errors returned by repositories. Services translate these
	// into the lifecycle errors above depending on the operation.
	ErrCustomIDTaken        = errors.New(ErrMsgCustomIDTaken)
	ErrSerializationFailure = errors.New(ErrMsgSerialization)
)

// TemplateError carries the per-segment problems found in an ID format
type TemplateError struct {
	Issues []SegmentIssue
}

func (e *TemplateError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("segment %d (%s): %s", issue.Index, issue.Type, issue.Message))
	}
	return fmt.Sprintf("%s: %s", ErrMsgFormatInvalid, strings.Join(parts, "; "))
}

func (e *TemplateError) Unwrap() error {
	return ErrFormatInvalid
}

// EditRejectedError is returned when an edited custom ID breaks the template structure
type EditRejectedError struct {
	Reason string
}

func (e *EditRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgEditRejected, e.Reason)
}

func (e *EditRejectedError) Unwrap() error {
	return ErrEditRejected
}

// IsRetryable reports whether the caller may resubmit the same request unchanged
func IsRetryable(err error) bool {
	return errors.Is(err, ErrSequenceConflict)
}
