package customid

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// EditResult is the outcome of validating a user edit of a custom ID
type EditResult struct {
	Valid           bool   `json:"valid"`
	Message         string `json:"message"`
	SequenceChanged bool   `json:"sequence_changed"`
	NewSequence     int64  `json:"new_sequence,omitempty"`
}

func rejected(format string, args ...any) EditResult {
	return EditResult{Valid: false, Message: fmt.Sprintf(format, args...)}
}

// ValidateEdit checks edited against the structure original was generated with.
// Fixed text is immutable, every other span keeps its width and character
// class, and only the first sequence span feeds back into the item counter.
func (t *Template) ValidateEdit(original, edited string) EditResult {
	original = norm.NFC.String(original)
	edited = norm.NFC.String(edited)

	if original == edited {
		return EditResult{Valid: true, Message: EditMsgNoChange}
	}

	wantLen := utf8.RuneCountInString(original)
	gotLen := utf8.RuneCountInString(edited)
	if wantLen != gotLen {
		return rejected(EditMsgLengthMismatch, wantLen, gotLen)
	}

	spans, err := t.Spans(original)
	if err != nil {
		return rejected(EditMsgOriginalMismatch)
	}

	before := []rune(original)
	after := []rune(edited)
	for _, span := range spans {
		if reason := span.check(string(before[span.Start:span.End])); reason != "" {
			return rejected(EditMsgOriginalMismatch)
		}
	}

	result := EditResult{Valid: true, Message: EditMsgValid}
	for _, span := range spans {
		oldValue := string(before[span.Start:span.End])
		newValue := string(after[span.Start:span.End])

		if reason := span.check(newValue); reason != "" {
			return rejected("%s", reason)
		}
		if oldValue == newValue {
			continue
		}

		switch span.Kind {
		case SpanVariable:
			if !t.HasSequence() {
				return rejected(EditMsgNotEditable, span.Segment, span.Type)
			}
		case SpanSequence:
			if span.Segment != t.seqIndex {
				continue
			}
			n, err := strconv.ParseInt(newValue, 10, 64)
			if err != nil {
				return rejected(EditMsgSequenceOutOfRange, newValue)
			}
			result.SequenceChanged = true
			result.NewSequence = n
			result.Message = fmt.Sprintf(EditMsgSequenceUpdated, n)
		case SpanLiteral:
			// check already rejected any change
		}
	}

	return result
}
