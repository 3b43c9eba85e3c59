package driving

import (
	"context"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// CascadeRequest selects where a cascade starts.
// The latest stage given wins: Dataset over Targets over Tagged over CorpusDir.
type CascadeRequest struct {
	// CorpusDir is the speech corpus release directory.
	CorpusDir string

	// Tagged is an existing tagged sentences artifact.
	Tagged string

	// Targets is an existing selected pairs artifact.
	Targets string

	// Dataset is an existing pairs-with-pforms artifact.
	Dataset string
}

// PipelineService runs the stages from corpus to coded output.
type PipelineService interface {
	// Tag tags every sentence of a corpus.
	Tag(ctx context.Context, cfg domain.RunConfig, corpusDir string) (*domain.StageResult, error)

	// Select extracts adjective-noun pairs from tagged sentences.
	Select(ctx context.Context, cfg domain.RunConfig, taggedPath string) (*domain.StageResult, error)

	// Pronounce adds phonological forms to pairs, dropping unknown words.
	Pronounce(ctx context.Context, cfg domain.RunConfig, targetsPath string) (*domain.StageResult, error)

	// Code writes the constraint-coded table of a dataset.
	Code(ctx context.Context, cfg domain.RunConfig, datasetPath string) (*domain.StageResult, error)

	// WatchCode recodes the dataset whenever the constraint file changes,
	// calling onCode after every attempt, until ctx is cancelled.
	WatchCode(ctx context.Context, cfg domain.RunConfig, datasetPath string, onCode func(*domain.StageResult, error)) error

	// Run executes every stage downstream of the request's entry point.
	Run(ctx context.Context, cfg domain.RunConfig, req CascadeRequest) ([]domain.StageResult, error)
}
