package customid

import (
	"fmt"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

// MaxSegments bounds the length of a saved ID format
const MaxSegments = 20

// CheckFormat reports whether segments may be saved as an inventory's ID format.
// Compilation issues come back as a *domain.TemplateError.
func CheckFormat(segments []domain.IDSegment) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: at least one segment is required", domain.ErrFormatInvalid)
	}
	if len(segments) > MaxSegments {
		return fmt.Errorf("%w: at most %d segments are allowed", domain.ErrFormatInvalid, MaxSegments)
	}
	if domain.IDFormat(segments).SequenceCount() > 1 {
		return domain.ErrMultipleSequenceSegments
	}
	if issues := Compile(segments).Issues(); len(issues) > 0 {
		return &domain.TemplateError{Issues: issues}
	}
	return nil
}
