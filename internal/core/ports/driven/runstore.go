package driven

import (
	"context"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// RunStore persists similarity runs and their scores.
type RunStore interface {
	// Save stores a run and its scores, replacing any previous scores.
	Save(ctx context.Context, run domain.Run, scores []domain.SimilarityScore) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// List returns all runs, newest first.
	List(ctx context.Context) ([]domain.Run, error)

	// Scores returns the scores of a run in vocabulary order.
	Scores(ctx context.Context, runID string) ([]domain.SimilarityScore, error)

	// Delete removes a run and its scores.
	Delete(ctx context.Context, id string) error
}
