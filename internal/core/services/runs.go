package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

// Ensure RunService implements the interface.
var _ driving.RunService = (*RunService)(nil)

// RunService provides access to persisted similarity runs.
type RunService struct {
	store driven.RunStore
}

// NewRunService creates a new run service.
func NewRunService(store driven.RunStore) *RunService {
	return &RunService{store: store}
}

// List returns all runs, newest first.
func (s *RunService) List(ctx context.Context) ([]domain.Run, error) {
	return s.store.List(ctx)
}

// Get retrieves a run by ID.
func (s *RunService) Get(ctx context.Context, id string) (*domain.Run, error) {
	return s.store.Get(ctx, id)
}

// Latest returns the newest run.
func (s *RunService) Latest(ctx context.Context) (*domain.Run, error) {
	runs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no runs: %w", domain.ErrNotFound)
	}
	return &runs[0], nil
}

// Scores returns the scores of a run in vocabulary order.
func (s *RunService) Scores(ctx context.Context, runID string) ([]domain.SimilarityScore, error) {
	return s.store.Scores(ctx, runID)
}

// Lookup returns the score of one adjective in a run.
// An empty runID selects the latest run. Adjectives match case-insensitively.
func (s *RunService) Lookup(ctx context.Context, runID, adjective string) (*domain.SimilarityScore, error) {
	if runID == "" {
		latest, err := s.Latest(ctx)
		if err != nil {
			return nil, err
		}
		runID = latest.ID
	}

	scores, err := s.store.Scores(ctx, runID)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(strings.TrimSpace(adjective))
	for i := range scores {
		if scores[i].Adjective == want {
			return &scores[i], nil
		}
	}
	return nil, fmt.Errorf("adjective %q in run %s: %w", adjective, runID, domain.ErrNotFound)
}

// Delete removes a run.
func (s *RunService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
