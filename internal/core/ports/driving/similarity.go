package driving

import (
	"context"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// SimilarityOptions controls the outputs of a similarity computation.
type SimilarityOptions struct {
	// CosinesPath overrides the scores file. Empty uses the config default.
	CosinesPath string

	// EmbeddingsPath writes the embeddings as JSON when set.
	EmbeddingsPath string

	// Extremes is the number of least and most similar adjectives reported.
	Extremes int
}

// SimilarityService measures semantic drift between word orders.
type SimilarityService interface {
	// Compute runs the semantic pipeline over a dataset, writes the scores
	// file and persists the run.
	Compute(ctx context.Context, cfg domain.RunConfig, datasetPath string, opts SimilarityOptions) (*domain.SimilarityReport, error)
}

// RunService provides access to persisted similarity runs.
type RunService interface {
	// List returns all runs, newest first.
	List(ctx context.Context) ([]domain.Run, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// Latest returns the newest run.
	// Returns domain.ErrNotFound when there are none.
	Latest(ctx context.Context) (*domain.Run, error)

	// Scores returns the scores of a run in vocabulary order.
	Scores(ctx context.Context, runID string) ([]domain.SimilarityScore, error)

	// Lookup returns the score of one adjective in a run.
	// An empty runID selects the latest run.
	Lookup(ctx context.Context, runID, adjective string) (*domain.SimilarityScore, error)

	// Delete removes a run.
	Delete(ctx context.Context, id string) error
}
