package customid

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

var (
	dateFormatRe     = regexp.MustCompile(`(?s)^(yyyy|mm|ddd|dd)(.*)$`)
	sequenceFormatRe = regexp.MustCompile(`(?s)^D([0-9]+)(.*)$`)
	random20FormatRe = regexp.MustCompile(`(?s)^(X5|D6)(.*)$`)
	random32FormatRe = regexp.MustCompile(`(?s)^(X8|D10)(.*)$`)
)

// valueKind describes how the value part of a segment renders
type valueKind int

const (
	kindLiteral valueKind = iota
	kindYear
	kindSequence
	kindDecimal
	kindHex
	kindGUID
)

// charClass is the set of characters a variable span may hold
type charClass int

const (
	classLiteral charClass = iota
	classDigits
	classHex
	classGUID
)

func (c charClass) String() string {
	switch c {
	case classDigits:
		return "decimal digits"
	case classHex:
		return "hex digits"
	case classGUID:
		return "a GUID"
	case classLiteral:
		return "literal text"
	}
	return "literal text"
}

// compiledSegment is a single segment after its format has been parsed.
// Invalid segments compile to a literal placeholder.
type compiledSegment struct {
	index   int
	segment domain.IDSegment
	issue   string
	kind    valueKind
	class   charClass
	literal string
	width   int
	limit   int64
	suffix  string
}

func (c compiledSegment) valid() bool {
	return c.issue == ""
}

func compileSegment(index int, seg domain.IDSegment) compiledSegment {
	c := compiledSegment{index: index, segment: seg, kind: kindLiteral, class: classLiteral}

	switch seg.Type {
	case domain.SegmentFixed:
		value := norm.NFC.String(seg.Value)
		if value == "" {
			return c.invalid(IssueMsgFixedValueRequired)
		}
		c.literal = value
		c.width = utf8.RuneCountInString(value)

	case domain.SegmentDate:
		m := dateFormatRe.FindStringSubmatch(seg.Format)
		if m == nil {
			return c.invalid(IssueMsgDateFormat)
		}
		if m[1] != DateTokenYear {
			// Recognised but not rendered; the whole format shows as a placeholder.
			return c.placeholder()
		}
		c.kind = kindYear
		c.class = classDigits
		c.width = YearWidth
		c.suffix = norm.NFC.String(m[2])

	case domain.SegmentSequence:
		c.kind = kindSequence
		c.class = classDigits
		c.width = DefaultSequenceWidth
		if seg.Format == "" {
			break
		}
		m := sequenceFormatRe.FindStringSubmatch(seg.Format)
		if m == nil {
			return c.invalid(IssueMsgSequenceFormat)
		}
		// the width takes every leading digit, so D11 is width 11 rather than D1 + "1"
		width, err := strconv.Atoi(m[1])
		if err != nil || m[1][0] == '0' || width < DefaultSequenceWidth || width > MaxSequenceWidth {
			return c.invalid(IssueMsgSequenceFormat)
		}
		c.width = width
		c.suffix = norm.NFC.String(m[2])

	case domain.SegmentRandom6Digit:
		c.kind, c.class, c.width, c.limit = kindDecimal, classDigits, Random6DigitWidth, random6DigitLimit

	case domain.SegmentRandom9Digit:
		c.kind, c.class, c.width, c.limit = kindDecimal, classDigits, Random9DigitWidth, random9DigitLimit

	case domain.SegmentRandom20Bit:
		m := random20FormatRe.FindStringSubmatch(seg.Format)
		if m == nil {
			return c.invalid(IssueMsgRandom20Format)
		}
		if m[1] == RandomTokenHex20 {
			c.kind, c.class, c.width = kindHex, classHex, Random20BitHexLen
		} else {
			c.kind, c.class, c.width, c.limit = kindDecimal, classDigits, Random20BitDecLen, random20BitDecimal
		}
		c.suffix = norm.NFC.String(m[2])

	case domain.SegmentRandom32Bit:
		m := random32FormatRe.FindStringSubmatch(seg.Format)
		if m == nil {
			return c.invalid(IssueMsgRandom32Format)
		}
		if m[1] == RandomTokenHex32 {
			c.kind, c.class, c.width = kindHex, classHex, Random32BitHexLen
		} else {
			c.kind, c.class, c.width, c.limit = kindDecimal, classDigits, Random32BitDecLen, random32BitDecimal
		}
		c.suffix = norm.NFC.String(m[2])

	case domain.SegmentGUID:
		c.kind, c.class, c.width = kindGUID, classGUID, GUIDLength

	default:
		return c.invalid(IssueMsgUnknownType)
	}

	return c
}

func (c compiledSegment) invalid(msg string) compiledSegment {
	c = c.placeholder()
	c.issue = msg
	return c
}

// placeholder renders the segment as "[format]" or "[type]" when no format is set
func (c compiledSegment) placeholder() compiledSegment {
	label := c.segment.Format
	if label == "" {
		label = string(c.segment.Type)
	}
	c.kind = kindLiteral
	c.class = classLiteral
	c.literal = norm.NFC.String("[" + label + "]")
	c.width = utf8.RuneCountInString(c.literal)
	c.suffix = ""
	c.limit = 0
	return c
}

// matches reports whether s belongs to the character class
func (c charClass) matches(s string) bool {
	switch c {
	case classDigits:
		return isDigits(s)
	case classHex:
		return isHex(s)
	case classGUID:
		return isGUID(s)
	case classLiteral:
		return true
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isHexByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexByte(s[i]) {
			return false
		}
	}
	return true
}

// isGUID checks the canonical 8-4-4-4-12 layout
func isGUID(s string) bool {
	if len(s) != GUIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return false
			}
		default:
			if !isHexByte(s[i]) {
				return false
			}
		}
	}
	return true
}
