package domain

// SegmentType identifies how a segment of a custom ID is rendered
type SegmentType string

const (
	SegmentFixed        SegmentType = "fixed"
	SegmentDate         SegmentType = "date"
	SegmentSequence     SegmentType = "sequence"
	SegmentRandom6Digit SegmentType = "random_6digit"
	SegmentRandom9Digit SegmentType = "random_9digit"
	SegmentRandom20Bit  SegmentType = "random_20bit"
	SegmentRandom32Bit  SegmentType = "random_32bit"
	SegmentGUID         SegmentType = "guid"
)

// SegmentTypes lists every supported segment type in display order
var SegmentTypes = []SegmentType{
	SegmentFixed,
	SegmentDate,
	SegmentSequence,
	SegmentRandom6Digit,
	SegmentRandom9Digit,
	SegmentRandom20Bit,
	SegmentRandom32Bit,
	SegmentGUID,
}

// IsValid reports whether t is a known segment type
func (t SegmentType) IsValid() bool {
	for _, known := range SegmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IDSegment is one typed piece of an inventory's custom ID template.
// ID is only used by editors to keep track of segments while reordering.
type IDSegment struct {
	ID     string      `json:"id" yaml:"id"`
	Type   SegmentType `json:"type" yaml:"type"`
	Value  string      `json:"value,omitempty" yaml:"value,omitempty"`
	Format string      `json:"format,omitempty" yaml:"format,omitempty"`
}

// IDFormat is the ordered segment list of an inventory
type IDFormat []IDSegment

// SequenceCount returns how many sequence segments the format contains
func (f IDFormat) SequenceCount() int {
	n := 0
	for _, seg := range f {
		if seg.Type == SegmentSequence {
			n++
		}
	}
	return n
}

// SegmentIssue describes a segment the template compiler could not interpret
type SegmentIssue struct {
	Index     int         `json:"index"`
	SegmentID string      `json:"segment_id,omitempty"`
	Type      SegmentType `json:"type"`
	Message   string      `json:"message"`
}

// DefaultIDFormat is used for inventories created without an ID format:
// the bare item sequence number.
func DefaultIDFormat() IDFormat {
	return IDFormat{{ID: "sequence", Type: SegmentSequence}}
}
