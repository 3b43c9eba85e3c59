package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// Ensure TagCache implements the interface.
var _ driven.TagCache = (*TagCache)(nil)

type tagKey struct {
	language, tagger, text string
}

// TagCache is an in-memory implementation of driven.TagCache.
type TagCache struct {
	mu      sync.RWMutex
	entries map[tagKey][]domain.TaggedToken
}

// NewTagCache creates a new in-memory tag cache.
func NewTagCache() *TagCache {
	return &TagCache{entries: make(map[tagKey][]domain.TaggedToken)}
}

// Get returns the cached tokens for text.
func (c *TagCache) Get(_ context.Context, language, tagger, text string) ([]domain.TaggedToken, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tokens, ok := c.entries[tagKey{language, tagger, text}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	result := make([]domain.TaggedToken, len(tokens))
	copy(result, tokens)
	return result, nil
}

// Put stores the tokens for text.
func (c *TagCache) Put(_ context.Context, language, tagger, text string, tokens []domain.TaggedToken) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make([]domain.TaggedToken, len(tokens))
	copy(copied, tokens)
	c.entries[tagKey{language, tagger, text}] = copied
	return nil
}

// Len returns the number of cached sentences.
func (c *TagCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
