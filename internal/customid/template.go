package customid

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

// SpanKind classifies a positional span of a generated custom ID
type SpanKind int

const (
	// SpanLiteral is fixed text, a literal suffix or a placeholder
	SpanLiteral SpanKind = iota
	// SpanSequence holds the digits of a sequence segment
	SpanSequence
	// SpanVariable holds a date, random or GUID value
	SpanVariable
)

// Span is the rune range one segment part occupies in a concrete ID
type Span struct {
	Segment int
	Type    domain.SegmentType
	Kind    SpanKind
	Start   int
	End     int
	Literal string
	class   charClass
}

// Width returns the span length in runes
func (s Span) Width() int {
	return s.End - s.Start
}

// Template is a compiled ID format. Compilation never fails: invalid
// segments are reported through Issues and render as placeholders.
type Template struct {
	segments []compiledSegment
	seqIndex int
}

// Compile validates every segment independently and returns the template
func Compile(segments []domain.IDSegment) *Template {
	t := &Template{
		segments: make([]compiledSegment, len(segments)),
		seqIndex: -1,
	}
	for i, seg := range segments {
		c := compileSegment(i, seg)
		t.segments[i] = c
		if t.seqIndex < 0 && c.kind == kindSequence {
			t.seqIndex = i
		}
	}
	return t
}

// Issues returns the per-segment problems, empty when every segment is valid
func (t *Template) Issues() []domain.SegmentIssue {
	var issues []domain.SegmentIssue
	for _, c := range t.segments {
		if c.valid() {
			continue
		}
		issues = append(issues, domain.SegmentIssue{
			Index:     c.index,
			SegmentID: c.segment.ID,
			Type:      c.segment.Type,
			Message:   c.issue,
		})
	}
	return issues
}

// Valid reports whether every segment compiled cleanly
func (t *Template) Valid() bool {
	return len(t.Issues()) == 0
}

// SequenceIndex returns the index of the segment bound to the item counter, or -1.
// Only the first sequence segment is bound; later ones render the same value.
func (t *Template) SequenceIndex() int {
	return t.seqIndex
}

// HasSequence reports whether the template carries a sequence segment
func (t *Template) HasSequence() bool {
	return t.seqIndex >= 0
}

// Len returns the number of segments
func (t *Template) Len() int {
	return len(t.segments)
}

// Pattern renders a human-readable pattern such as ITEM-###
func (t *Template) Pattern() string {
	var b strings.Builder
	for _, c := range t.segments {
		switch c.kind {
		case kindLiteral:
			b.WriteString(c.literal)
		case kindYear:
			b.WriteString(PatternYear)
		case kindSequence:
			b.WriteString(strings.Repeat(PatternSequenceChar, c.width))
		case kindDecimal:
			b.WriteString(strings.Repeat(PatternDecimalChar, c.width))
		case kindHex:
			b.WriteString(strings.Repeat(PatternHexChar, c.width))
		case kindGUID:
			b.WriteString(PatternGUID)
		}
		b.WriteString(c.suffix)
	}
	return b.String()
}

// Spans resolves the positional span table of id.
// Every span has a width fixed by the template except sequence spans, which
// hold at least their pad width of digits. It fails when no sequence width
// makes the template fit the length of id.
func (t *Template) Spans(id string) ([]Span, error) {
	total := utf8.RuneCountInString(norm.NFC.String(id))
	digits, ok := t.resolveSequenceDigits(total)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFormatInvalid, MatchMsgShape)
	}
	return t.layout(digits), nil
}

// staticWidth is the length of everything except sequence values
func (t *Template) staticWidth() (width int, pads []int) {
	for _, c := range t.segments {
		if c.kind == kindSequence {
			pads = append(pads, c.width)
		} else {
			width += c.width
		}
		width += utf8.RuneCountInString(c.suffix)
	}
	return width, pads
}

// resolveSequenceDigits finds the digit count of the sequence value that
// makes the rendered template exactly total runes long.
func (t *Template) resolveSequenceDigits(total int) (int, bool) {
	static, pads := t.staticWidth()
	if len(pads) == 0 {
		return 0, static == total
	}
	for digits := 1; digits <= maxInt64Digits; digits++ {
		width := static
		for _, pad := range pads {
			width += max(pad, digits)
		}
		if width == total {
			return digits, true
		}
		if width > total {
			break
		}
	}
	return 0, false
}

func (t *Template) layout(seqDigits int) []Span {
	spans := make([]Span, 0, len(t.segments)*2)
	pos := 0
	for _, c := range t.segments {
		span := Span{Segment: c.index, Type: c.segment.Type, Start: pos, class: c.class}
		switch c.kind {
		case kindLiteral:
			span.Kind = SpanLiteral
			span.Literal = c.literal
			span.End = pos + c.width
		case kindSequence:
			span.Kind = SpanSequence
			span.End = pos + max(c.width, seqDigits)
		case kindYear, kindDecimal, kindHex, kindGUID:
			span.Kind = SpanVariable
			span.End = pos + c.width
		}
		spans = append(spans, span)
		pos = span.End

		if c.suffix != "" {
			n := utf8.RuneCountInString(c.suffix)
			spans = append(spans, Span{
				Segment: c.index,
				Type:    c.segment.Type,
				Kind:    SpanLiteral,
				Start:   pos,
				End:     pos + n,
				Literal: c.suffix,
				class:   classLiteral,
			})
			pos += n
		}
	}
	return spans
}

// Match checks that candidate could have been produced by the template.
// No original ID is involved, so every variable span only needs the right
// width and character class.
func (t *Template) Match(candidate string) error {
	candidate = norm.NFC.String(candidate)
	if candidate == "" {
		return &domain.EditRejectedError{Reason: MatchMsgEmpty}
	}
	spans, err := t.Spans(candidate)
	if err != nil {
		return &domain.EditRejectedError{Reason: MatchMsgShape}
	}
	runes := []rune(candidate)
	for _, span := range spans {
		if reason := span.check(string(runes[span.Start:span.End])); reason != "" {
			return &domain.EditRejectedError{Reason: reason}
		}
	}
	return nil
}

// check validates a concrete substring against the span, returning a
// rejection reason or "".
func (s Span) check(value string) string {
	switch s.Kind {
	case SpanLiteral:
		if value != s.Literal {
			return fmt.Sprintf(EditMsgFixedChanged, s.Literal, s.Start)
		}
	case SpanSequence, SpanVariable:
		if !s.class.matches(value) {
			return fmt.Sprintf(EditMsgClassMismatch, s.Segment, s.Type, s.Start, s.class)
		}
	}
	return ""
}
