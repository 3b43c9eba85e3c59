package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu     sync.RWMutex
	runs   map[string]domain.Run
	scores map[string][]domain.SimilarityScore
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs:   make(map[string]domain.Run),
		scores: make(map[string][]domain.SimilarityScore),
	}
}

// Save stores a run and its scores.
func (s *RunStore) Save(_ context.Context, run domain.Run, scores []domain.SimilarityScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	copied := make([]domain.SimilarityScore, len(scores))
	copy(copied, scores)
	s.scores[run.ID] = copied
	return nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// List returns all runs, newest first.
func (s *RunStore) List(_ context.Context) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		result = append(result, run)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Scores returns the scores of a run.
func (s *RunStore) Scores(_ context.Context, runID string) ([]domain.SimilarityScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.runs[runID]; !ok {
		return nil, domain.ErrNotFound
	}
	result := make([]domain.SimilarityScore, len(s.scores[runID]))
	copy(result, s.scores[runID])
	return result, nil
}

// Delete removes a run and its scores.
func (s *RunStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	delete(s.scores, id)
	return nil
}
