package driven

import (
	"context"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// ArtifactStore reads and writes the files passed between pipeline stages.
// Sentence and pair artifacts are JSON Lines; tables are CSV.
// Parent directories are created as needed.
type ArtifactStore interface {
	// WriteSentences writes tagged sentences to path.
	WriteSentences(ctx context.Context, path string, sentences []domain.Sentence) error

	// ReadSentences reads tagged sentences from path.
	ReadSentences(ctx context.Context, path string) ([]domain.Sentence, error)

	// WritePairs writes pair tokens to path.
	WritePairs(ctx context.Context, path string, pairs []domain.PairToken) error

	// ReadPairs reads pair tokens from path.
	ReadPairs(ctx context.Context, path string) ([]domain.PairToken, error)

	// WriteTable writes a table to path as CSV.
	WriteTable(ctx context.Context, path string, table domain.Table) error

	// WriteJSON writes v to path as indented JSON.
	WriteJSON(ctx context.Context, path string, v any) error
}
