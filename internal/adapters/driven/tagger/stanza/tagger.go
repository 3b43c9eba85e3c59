// Package stanza provides a tagger adapter for a Stanza pipeline served over HTTP.
//
// The service accepts POST /tag with {"text", "lang"} and answers with
// {"sentences": [{"words": [{"text", "lemma", "upos"}]}]}, following the
// Document/Sentence/Word structure of Stanza. Words of all sentences are
// flattened in order.
package stanza

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ordo/internal/adapters/driven/tagger"
	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// Ensure Tagger implements the interface.
var _ driven.Tagger = (*Tagger)(nil)

// DefaultBaseURL is the service endpoint used when none is configured.
const DefaultBaseURL = "http://localhost:8080"

// Config holds configuration for the Stanza tagger.
type Config struct {
	// BaseURL is the service endpoint.
	BaseURL string

	// Language selects the Stanza pipeline.
	Language string

	// Model optionally names a package within the language, e.g. "default".
	Model string

	// RequestsPerSecond throttles requests. Zero means unlimited.
	RequestsPerSecond float64
}

// Tagger tags text with a remote Stanza pipeline.
type Tagger struct {
	client   *tagger.Client
	language string
	model    string
}

type tagRequest struct {
	Text     string `json:"text"`
	Language string `json:"lang,omitempty"`
	Package  string `json:"package,omitempty"`
}

type word struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	UPOS  string `json:"upos"`
}

type tagResponse struct {
	Sentences []struct {
		Words []word `json:"words"`
	} `json:"sentences"`
}

// New creates a Stanza tagger.
func New(cfg Config) *Tagger {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Tagger{
		client:   tagger.NewClient("stanza", cfg.BaseURL, cfg.RequestsPerSecond),
		language: cfg.Language,
		model:    cfg.Model,
	}
}

// Name returns the provider name.
func (t *Tagger) Name() string {
	return domain.TaggerStanza.String()
}

// Model returns the pipeline package, or the language when none is set.
func (t *Tagger) Model() string {
	if t.model == "" {
		return t.language
	}
	return t.model
}

// Tag returns the words of text in order.
func (t *Tagger) Tag(ctx context.Context, text string) ([]domain.TaggedToken, error) {
	req := tagRequest{Text: text, Language: t.language, Package: t.model}

	var resp tagResponse
	if err := t.client.PostJSON(ctx, "/tag", req, &resp); err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}

	var tokens []domain.TaggedToken
	for _, s := range resp.Sentences {
		for _, w := range s.Words {
			tokens = append(tokens, domain.TaggedToken{Text: w.Text, Lemma: w.Lemma, Tag: w.UPOS})
		}
	}
	return tokens, nil
}

// Ping validates the service is reachable.
func (t *Tagger) Ping(ctx context.Context) error {
	return t.client.Ping(ctx)
}
