package item

import (
	"encoding/json"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Stockpile_Go/internal/customid"
	"github.com/osse101/Stockpile_Go/internal/domain"
)

// templateCache keeps compiled templates keyed by the serialized segment list,
// so an edited ID format gets a fresh entry and old entries simply age out.
type templateCache struct {
	lru *expirable.LRU[string, *customid.Template]
}

func newTemplateCache(size int) *templateCache {
	if size <= 0 {
		size = DefaultTemplateCacheSize
	}
	return &templateCache{
		lru: expirable.NewLRU[string, *customid.Template](size, nil, TemplateCacheTTL),
	}
}

// Get returns the compiled template for format, compiling it on a miss.
// An empty format compiles as domain.DefaultIDFormat.
func (c *templateCache) Get(format domain.IDFormat) *customid.Template {
	if len(format) == 0 {
		format = domain.DefaultIDFormat()
	}

	key, err := json.Marshal(format)
	if err != nil {
		return customid.Compile(format)
	}

	if t, ok := c.lru.Get(string(key)); ok {
		return t
	}
	t := customid.Compile(format)
	c.lru.Add(string(key), t)
	return t
}

// Len reports how many templates are cached
func (c *templateCache) Len() int {
	return c.lru.Len()
}
