package customid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

func TestCheckFormat(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, CheckFormat([]domain.IDSegment{fixed("A-"), seg(domain.SegmentSequence, "D3")}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, CheckFormat(nil), domain.ErrFormatInvalid)
	})

	t.Run("too many segments", func(t *testing.T) {
		segments := make([]domain.IDSegment, MaxSegments+1)
		for i := range segments {
			segments[i] = fixed("x")
		}
		assert.ErrorIs(t, CheckFormat(segments), domain.ErrFormatInvalid)
	})

	t.Run("two sequence segments", func(t *testing.T) {
		err := CheckFormat([]domain.IDSegment{seg(domain.SegmentSequence, "D2"), seg(domain.SegmentSequence, "D3")})
		assert.ErrorIs(t, err, domain.ErrMultipleSequenceSegments)
	})

	t.Run("sequence width above ten", func(t *testing.T) {
		err := CheckFormat([]domain.IDSegment{fixed("A-"), seg(domain.SegmentSequence, "D11")})
		require.ErrorIs(t, err, domain.ErrFormatInvalid)
		assert.Contains(t, err.Error(), IssueMsgSequenceFormat)
	})

	t.Run("segment issues", func(t *testing.T) {
		err := CheckFormat([]domain.IDSegment{fixed(""), seg(domain.SegmentRandom20Bit, "X9")})
		require.ErrorIs(t, err, domain.ErrFormatInvalid)

		var tmplErr *domain.TemplateError
		require.True(t, errors.As(err, &tmplErr))
		assert.Len(t, tmplErr.Issues, 2)
		assert.Contains(t, err.Error(), IssueMsgFixedValueRequired)
	})
}
