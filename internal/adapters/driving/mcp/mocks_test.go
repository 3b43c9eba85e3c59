package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// mockRunService is a mock implementation of driving.RunService.
type mockRunService struct {
	runs   []domain.Run
	scores map[string][]domain.SimilarityScore
	err    error
}

func newMockRunService() *mockRunService {
	created := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	return &mockRunService{
		runs: []domain.Run{
			{ID: "run-2", Language: "it", Input: "dataset_it.jsonl", CreatedAt: created.Add(time.Hour),
				Summary: domain.RunSummary{Adjectives: 2, Dimensions: 4}},
			{ID: "run-1", Language: "it", Input: "dataset_it.jsonl", CreatedAt: created,
				Summary: domain.RunSummary{Adjectives: 1, Dimensions: 2}},
		},
		scores: map[string][]domain.SimilarityScore{
			"run-2": {{Adjective: "grande", Cosine: 0.91}, {Adjective: "nuovo", Cosine: -0.12}},
			"run-1": {{Adjective: "grande", Cosine: 0.5}},
		},
	}
}

func (m *mockRunService) List(_ context.Context) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockRunService) Get(_ context.Context, id string) (*domain.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRunService) Latest(_ context.Context) (*domain.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.runs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &m.runs[0], nil
}

func (m *mockRunService) Scores(_ context.Context, runID string) ([]domain.SimilarityScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	scores, ok := m.scores[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return scores, nil
}

func (m *mockRunService) Lookup(ctx context.Context, runID, adjective string) (*domain.SimilarityScore, error) {
	scores, err := m.Scores(ctx, runID)
	if err != nil {
		return nil, err
	}
	for i := range scores {
		if scores[i].Adjective == strings.ToLower(adjective) {
			return &scores[i], nil
		}
	}
	return nil, fmt.Errorf("adjective %q: %w", adjective, domain.ErrNotFound)
}

func (m *mockRunService) Delete(_ context.Context, _ string) error {
	return m.err
}
