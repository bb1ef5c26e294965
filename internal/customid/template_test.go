package customid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

func fixed(v string) domain.IDSegment {
	return domain.IDSegment{ID: "f-" + v, Type: domain.SegmentFixed, Value: v}
}

func seg(t domain.SegmentType, format string) domain.IDSegment {
	return domain.IDSegment{ID: string(t) + "-" + format, Type: t, Format: format}
}

func TestCompile_SegmentIssues(t *testing.T) {
	tests := []struct {
		name      string
		segment   domain.IDSegment
		wantIssue string
	}{
		{"fixed with value", fixed("ITEM-"), ""},
		{"fixed without value", fixed(""), IssueMsgFixedValueRequired},
		{"date yyyy", seg(domain.SegmentDate, "yyyy"), ""},
		{"date yyyy with suffix", seg(domain.SegmentDate, "yyyy-"), ""},
		{"date ddd", seg(domain.SegmentDate, "ddd"), ""},
		{"date unsupported token", seg(domain.SegmentDate, "hh"), IssueMsgDateFormat},
		{"date without format", seg(domain.SegmentDate, ""), IssueMsgDateFormat},
		{"sequence without format", seg(domain.SegmentSequence, ""), ""},
		{"sequence D3", seg(domain.SegmentSequence, "D3"), ""},
		{"sequence D10 with suffix", seg(domain.SegmentSequence, "D10_"), ""},
		{"sequence D0", seg(domain.SegmentSequence, "D0"), IssueMsgSequenceFormat},
		{"sequence D11", seg(domain.SegmentSequence, "D11"), IssueMsgSequenceFormat},
		{"sequence D100", seg(domain.SegmentSequence, "D100"), IssueMsgSequenceFormat},
		{"sequence D05", seg(domain.SegmentSequence, "D05"), IssueMsgSequenceFormat},
		{"sequence digits after D10 widen the width", seg(domain.SegmentSequence, "D105"), IssueMsgSequenceFormat},
		{"sequence D9 with letter suffix", seg(domain.SegmentSequence, "D9a1"), ""},
		{"sequence lowercase", seg(domain.SegmentSequence, "d3"), IssueMsgSequenceFormat},
		{"random_20bit X5", seg(domain.SegmentRandom20Bit, "X5"), ""},
		{"random_20bit D6 with suffix", seg(domain.SegmentRandom20Bit, "D6/"), ""},
		{"random_20bit X8", seg(domain.SegmentRandom20Bit, "X8"), IssueMsgRandom20Format},
		{"random_20bit without format", seg(domain.SegmentRandom20Bit, ""), IssueMsgRandom20Format},
		{"random_32bit X8", seg(domain.SegmentRandom32Bit, "X8"), ""},
		{"random_32bit D10", seg(domain.SegmentRandom32Bit, "D10"), ""},
		{"random_32bit X5", seg(domain.SegmentRandom32Bit, "X5"), IssueMsgRandom32Format},
		{"random_6digit ignores format", seg(domain.SegmentRandom6Digit, "whatever"), ""},
		{"random_9digit", seg(domain.SegmentRandom9Digit, ""), ""},
		{"guid", seg(domain.SegmentGUID, ""), ""},
		{"unknown type", seg("checksum", ""), IssueMsgUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := Compile([]domain.IDSegment{tt.segment})
			issues := tmpl.Issues()
			if tt.wantIssue == "" {
				assert.Empty(t, issues)
				assert.True(t, tmpl.Valid())
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, 0, issues[0].Index)
			assert.Equal(t, tt.segment.ID, issues[0].SegmentID)
			assert.Equal(t, tt.wantIssue, issues[0].Message)
			assert.False(t, tmpl.Valid())
		})
	}
}

func TestCompile_SegmentsValidatedIndependently(t *testing.T) {
	tmpl := Compile([]domain.IDSegment{
		fixed("A-"),
		seg(domain.SegmentSequence, "X3"),
		seg(domain.SegmentDate, "yyyy"),
		seg(domain.SegmentRandom32Bit, "Q"),
	})

	issues := tmpl.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].Index)
	assert.Equal(t, 3, issues[1].Index)
	assert.Equal(t, "A-[X3]YYYY[Q]", tmpl.Pattern())
}

func TestTemplate_Pattern(t *testing.T) {
	tests := []struct {
		name     string
		segments []domain.IDSegment
		want     string
	}{
		{
			name:     "fixed and sequence",
			segments: []domain.IDSegment{fixed("ITEM-"), seg(domain.SegmentSequence, "D3")},
			want:     "ITEM-###",
		},
		{
			name:     "default sequence width",
			segments: []domain.IDSegment{fixed("N"), seg(domain.SegmentSequence, "")},
			want:     "N#",
		},
		{
			name: "date random and suffixes",
			segments: []domain.IDSegment{
				seg(domain.SegmentDate, "yyyy-"),
				seg(domain.SegmentRandom20Bit, "X5_"),
				seg(domain.SegmentRandom32Bit, "D10"),
			},
			want: "YYYY-XXXXX_9999999999",
		},
		{
			name:     "unrendered date token",
			segments: []domain.IDSegment{seg(domain.SegmentDate, "mm"), fixed("/"), seg(domain.SegmentSequence, "D2")},
			want:     "[mm]/##",
		},
		{
			name:     "guid and fixed width randoms",
			segments: []domain.IDSegment{seg(domain.SegmentGUID, ""), fixed(":"), seg(domain.SegmentRandom6Digit, "")},
			want:     PatternGUID + ":999999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.segments).Pattern())
		})
	}
}

func TestTemplate_SequenceIndex_FirstWins(t *testing.T) {
	tmpl := Compile([]domain.IDSegment{
		fixed("A"),
		seg(domain.SegmentSequence, "D2"),
		fixed("-"),
		seg(domain.SegmentSequence, "D4"),
	})
	assert.Equal(t, 1, tmpl.SequenceIndex())
	assert.True(t, tmpl.HasSequence())

	noSeq := Compile([]domain.IDSegment{fixed("A"), seg(domain.SegmentGUID, "")})
	assert.Equal(t, -1, noSeq.SequenceIndex())
	assert.False(t, noSeq.HasSequence())
}

func TestTemplate_Spans(t *testing.T) {
	tmpl := Compile([]domain.IDSegment{
		fixed("LAP-"),
		seg(domain.SegmentSequence, "D3_"),
		seg(domain.SegmentRandom20Bit, "X5"),
	})

	t.Run("padded sequence", func(t *testing.T) {
		spans, err := tmpl.Spans("LAP-007_A1B2C")
		require.NoError(t, err)
		require.Len(t, spans, 4)

		assert.Equal(t, SpanLiteral, spans[0].Kind)
		assert.Equal(t, 0, spans[0].Start)
		assert.Equal(t, 4, spans[0].End)

		assert.Equal(t, SpanSequence, spans[1].Kind)
		assert.Equal(t, 3, spans[1].Width())

		assert.Equal(t, SpanLiteral, spans[2].Kind)
		assert.Equal(t, "_", spans[2].Literal)

		assert.Equal(t, SpanVariable, spans[3].Kind)
		assert.Equal(t, 5, spans[3].Width())
	})

	t.Run("sequence grown past its pad width", func(t *testing.T) {
		spans, err := tmpl.Spans("LAP-1000_A1B2C")
		require.NoError(t, err)
		assert.Equal(t, 4, spans[1].Width())
		assert.Equal(t, 14, spans[3].End)
	})

	t.Run("too short for the template", func(t *testing.T) {
		_, err := tmpl.Spans("LAP-07_A1B2C")
		assert.ErrorIs(t, err, domain.ErrFormatInvalid)
	})

	t.Run("fixed length template", func(t *testing.T) {
		noSeq := Compile([]domain.IDSegment{fixed("X-"), seg(domain.SegmentRandom6Digit, "")})
		_, err := noSeq.Spans("X-123456")
		assert.NoError(t, err)
		_, err = noSeq.Spans("X-1234567")
		assert.Error(t, err)
	})
}

func TestTemplate_Match(t *testing.T) {
	tmpl := Compile([]domain.IDSegment{
		fixed("INV-"),
		seg(domain.SegmentDate, "yyyy-"),
		seg(domain.SegmentSequence, "D4"),
	})

	tests := []struct {
		name      string
		candidate string
		wantErr   bool
	}{
		{"conforming", "INV-2026-0042", false},
		{"sequence wider than pad", "INV-2026-12345", false},
		{"sequence narrower than pad", "INV-2026-42", true},
		{"fixed text changed", "INX-2026-0042", true},
		{"suffix changed", "INV-2026_0042", true},
		{"letters in year", "INV-20X6-0042", true},
		{"letters in sequence", "INV-2026-00A2", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tmpl.Match(tt.candidate)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrEditRejected)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
