package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
	"github.com/custodia-labs/ordo/internal/logger"
	"github.com/custodia-labs/ordo/internal/semantic"
)

// DefaultExtremes is the number of least and most similar adjectives reported.
const DefaultExtremes = 10

// mixtureComponents is the number of adjective populations looked for.
const mixtureComponents = 2

// Ensure SimilarityService implements the interface.
var _ driving.SimilarityService = (*SimilarityService)(nil)

// SimilarityService measures semantic drift between word orders.
type SimilarityService struct {
	artifacts driven.ArtifactStore
	runs      driven.RunStore
}

// NewSimilarityService creates a new similarity service.
// The run store is optional - if nil, runs are not persisted.
func NewSimilarityService(artifacts driven.ArtifactStore, runs driven.RunStore) *SimilarityService {
	return &SimilarityService{
		artifacts: artifacts,
		runs:      runs,
	}
}

// Compute runs the semantic pipeline over a dataset, writes the scores
// file and persists the run.
func (s *SimilarityService) Compute(
	ctx context.Context,
	cfg domain.RunConfig,
	datasetPath string,
	opts driving.SimilarityOptions,
) (*domain.SimilarityReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pairs, err := s.artifacts.ReadPairs(ctx, datasetPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	result, err := semantic.Run(domain.RecordsFromPairs(pairs), semantic.OptionsFrom(cfg.Similarity))
	if err != nil {
		return nil, err
	}
	if result.Summary.Clamped() {
		logger.Warn("used %d of %d requested dimensions",
			result.Summary.Dimensions, result.Summary.RequestedDimensions)
	}

	report := &domain.SimilarityReport{
		Run: domain.Run{
			ID:        uuid.NewString(),
			Kind:      domain.RunKindSimilarity,
			Language:  cfg.Language,
			Input:     datasetPath,
			Settings:  cfg.Similarity,
			Summary:   result.Summary,
			CreatedAt: time.Now(),
		},
		Scores:      result.Scores,
		CosinesPath: opts.CosinesPath,
	}
	if report.CosinesPath == "" {
		report.CosinesPath = cfg.CosinesPath()
	}

	if err := s.artifacts.WriteTable(ctx, report.CosinesPath, ScoresTable(result.Scores)); err != nil {
		return nil, fmt.Errorf("write cosines: %w", err)
	}

	if opts.EmbeddingsPath != "" {
		if err := s.artifacts.WriteJSON(ctx, opts.EmbeddingsPath, result.Embeddings()); err != nil {
			return nil, fmt.Errorf("write embeddings: %w", err)
		}
		report.EmbeddingsPath = opts.EmbeddingsPath
	}

	n := opts.Extremes
	if n <= 0 {
		n = DefaultExtremes
	}
	report.Least, report.Most = semantic.Extremes(result.Scores, n)

	cosines := make([]float64, len(result.Scores))
	for i, sc := range result.Scores {
		cosines[i] = sc.Cosine
	}
	if mixture := semantic.FitMixture(cosines, mixtureComponents); mixture != nil {
		report.Mixture = mixture.Components
		logger.Debug("mixture converged after %d iterations", mixture.Iterations)
	}

	if s.runs != nil {
		if err := s.runs.Save(ctx, report.Run, result.Scores); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
		logger.Debug("saved run %s", report.Run.ID)
	}

	return report, nil
}

// ScoresTable lays scores out as the cosines file, in vocabulary order.
func ScoresTable(scores []domain.SimilarityScore) domain.Table {
	rows := make([][]string, len(scores))
	for i, sc := range scores {
		rows[i] = []string{sc.Adjective, strconv.FormatFloat(sc.Cosine, 'g', -1, 64)}
	}
	return domain.Table{
		Header: []string{"adjective", "cosine_similarity"},
		Rows:   rows,
	}
}
