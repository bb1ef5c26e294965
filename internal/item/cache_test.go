package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

func TestTemplateCache(t *testing.T) {
	cache := newTemplateCache(2)

	first := cache.Get(laptopFormat())
	assert.Same(t, first, cache.Get(laptopFormat()))
	assert.Equal(t, 1, cache.Len())

	edited := laptopFormat()
	edited[1].Format = "D5"
	assert.NotSame(t, first, cache.Get(edited))
	assert.Equal(t, 2, cache.Len())

	fallback := cache.Get(nil)
	assert.True(t, fallback.HasSequence())
	assert.Equal(t, "#", fallback.Pattern())
	assert.Same(t, fallback, cache.Get(domain.DefaultIDFormat()))
	assert.Equal(t, 2, cache.Len())
}

func TestParseFieldValues_Order(t *testing.T) {
	inv := &domain.Inventory{Fields: []domain.FieldDefinition{
		{ID: 7, Title: "B", Type: domain.FieldBoolean},
		{ID: 3, Title: "A", Type: domain.FieldNumber},
	}}

	values, err := parseFieldValues(inv, map[int]string{7: "false", 3: "-2e3"})
	assert.NoError(t, err)
	if assert.Len(t, values, 2) {
		assert.Equal(t, 3, values[0].FieldID)
		assert.Equal(t, -2000.0, *values[0].Number)
		assert.False(t, *values[1].Bool)
	}

	values, err = parseFieldValues(inv, nil)
	assert.NoError(t, err)
	assert.Nil(t, values)
}
