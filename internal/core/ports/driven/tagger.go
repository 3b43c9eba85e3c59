package driven

import (
	"context"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// Tagger part-of-speech tags and lemmatises text.
// Every implementation maps its native result onto domain.TaggedToken
// with universal tags, whatever shape the underlying service returns.
//
// Implementations may include:
//   - spaCy pipelines served over HTTP
//   - Stanza pipelines served over HTTP
type Tagger interface {
	// Name returns the provider name (e.g. "spacy").
	Name() string

	// Model returns the pipeline or model the tagger uses.
	Model() string

	// Tag returns the tokens of text in order.
	Tag(ctx context.Context, text string) ([]domain.TaggedToken, error)

	// Ping validates the service is reachable.
	Ping(ctx context.Context) error
}

// TaggerBuilder creates a Tagger from provider-specific configuration.
type TaggerBuilder func(cfg map[string]any) (Tagger, error)

// TaggerRegistry builds taggers by provider name.
type TaggerRegistry interface {
	// Register adds a builder for a provider.
	Register(name string, builder TaggerBuilder)

	// Build creates the tagger for a provider.
	// Returns domain.ErrUnsupportedType for an unknown provider.
	Build(name string, cfg map[string]any) (Tagger, error)

	// Names returns the registered provider names in sorted order.
	Names() []string
}

// TagCache remembers tagger output by sentence text.
// This is an optional port - when nil, every sentence is tagged.
type TagCache interface {
	// Get returns the cached tokens for text.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, language, tagger, text string) ([]domain.TaggedToken, error)

	// Put stores the tokens for text, replacing any previous entry.
	Put(ctx context.Context, language, tagger, text string, tokens []domain.TaggedToken) error
}
