// Package spacy provides a tagger adapter for a spaCy pipeline served over HTTP.
//
// The service accepts POST /tag with {"text", "model"} and answers with
// {"tokens": [{"text", "lemma_", "pos_"}]}, the attribute names of a spaCy Token.
package spacy

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

// Config holds configuration for the spaCy tagger.
type Config struct {
	// BaseURL is the service endpoint.
	BaseURL string

	// Model is the spaCy pipeline, e.g. "it_core_news_sm".
	Model string

	// RequestsPerSecond throttles requests. Zero means unlimited.
	RequestsPerSecond float64
}

// Tagger tags text with a remote spaCy pipeline.
type Tagger struct {
	client *tagger.Client
	model  string
}

type tagRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

type tagResponse struct {
	Tokens []struct {
		Text  string `json:"text"`
		Lemma string `json:"lemma_"`
		POS   string `json:"pos_"`
	} `json:"tokens"`
}

// New creates a spaCy tagger.
func New(cfg Config) *Tagger {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Tagger{
		client: tagger.NewClient("spacy", cfg.BaseURL, cfg.RequestsPerSecond),
		model:  cfg.Model,
	}
}

// Name returns the provider name.
func (t *Tagger) Name() string {
	return domain.TaggerSpacy.String()
}

// Model returns the spaCy pipeline name.
func (t *Tagger) Model() string {
	return t.model
}

// Tag returns the tokens of text in order.
func (t *Tagger) Tag(ctx context.Context, text string) ([]domain.TaggedToken, error) {
	var resp tagResponse
	if err := t.client.PostJSON(ctx, "/tag", tagRequest{Text: text, Model: t.model}, &resp); err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}

	tokens := make([]domain.TaggedToken, len(resp.Tokens))
	for i, tok := range resp.Tokens {
		tokens[i] = domain.TaggedToken{Text: tok.Text, Lemma: tok.Lemma, Tag: tok.POS}
	}
	return tokens, nil
}

// Ping validates the service is reachable.
func (t *Tagger) Ping(ctx context.Context) error {
	return t.client.Ping(ctx)
}
