package customid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

// Generator renders templates into concrete IDs.
// Now and Rand are the only sources of non-determinism.
type Generator struct {
	Now  func() time.Time
	Rand io.Reader
}

// NewGenerator returns a generator backed by the wall clock and crypto/rand
func NewGenerator() Generator {
	return Generator{Now: time.Now, Rand: rand.Reader}
}

// Generate renders the template with seq as the value of every sequence segment.
// Random values are not checked against existing IDs.
func (g Generator) Generate(t *Template, seq int64) (string, error) {
	if seq < 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeSequence)
	}

	var b strings.Builder
	for _, c := range t.segments {
		switch c.kind {
		case kindLiteral:
			b.WriteString(c.literal)
		case kindYear:
			fmt.Fprintf(&b, "%04d", g.Now().Year())
		case kindSequence:
			fmt.Fprintf(&b, "%0*d", c.width, seq)
		case kindDecimal:
			n, err := draw(g.Rand, uint64(c.limit))
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "%0*d", c.width, n)
		case kindHex:
			n, err := draw(g.Rand, 1<<uint(c.width*4))
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "%0*X", c.width, n)
		case kindGUID:
			id, err := uuid.NewRandomFromReader(g.Rand)
			if err != nil {
				return "", fmt.Errorf("%s: %w", ErrMsgRandomSource, err)
			}
			b.WriteString(id.String())
		}
		b.WriteString(c.suffix)
	}
	return b.String(), nil
}

// draw returns a uniform value in [0, limit) read from r
func draw(r io.Reader, limit uint64) (uint64, error) {
	var buf [8]byte
	ceiling := math.MaxUint64 - math.MaxUint64%limit
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("%s: %w", ErrMsgRandomSource, err)
		}
		if v := binary.BigEndian.Uint64(buf[:]); v < ceiling {
			return v % limit, nil
		}
	}
}

// Bind returns a closure generating IDs for t
func (g Generator) Bind(t *Template) func(seq int64) (string, error) {
	return func(seq int64) (string, error) {
		return g.Generate(t, seq)
	}
}

// Generate renders the template with the default generator
func (t *Template) Generate(seq int64) (string, error) {
	return NewGenerator().Generate(t, seq)
}

// PreviewSequence is the sequence value used when previewing a format
const PreviewSequence int64 = 1

// Preview renders the template as the first item of an empty inventory would see it
func (t *Template) Preview() (string, error) {
	return t.Generate(PreviewSequence)
}
