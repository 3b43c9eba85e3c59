package driven

import (
	"context"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// CorpusReader reads the validated transcripts of a speech corpus.
type CorpusReader interface {
	// Detect returns the language code of the single language found in dir.
	// Returns domain.ErrCorpusNotFound when none is found.
	Detect(ctx context.Context, dir string) (string, error)

	// Read returns the untagged sentences of a language.
	// Returns domain.ErrCorpusNotFound when the language is absent.
	Read(ctx context.Context, dir, language string) ([]domain.Sentence, error)
}
