package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
	"github.com/custodia-labs/ordo/internal/logger"
)

// Ensure PipelineService implements the interface.
var _ driving.PipelineService = (*PipelineService)(nil)

// PipelineService runs the stages from corpus to coded output.
// Each stage reads the artifact of the previous one and writes its own.
type PipelineService struct {
	corpus      driven.CorpusReader
	taggers     driven.TaggerRegistry
	artifacts   driven.ArtifactStore
	lexicons    driven.LexiconLoader
	constraints driven.ConstraintLoader

	// Optional
	cache   driven.TagCache
	watcher driven.FileWatcher
}

// NewPipelineService creates a new pipeline service.
func NewPipelineService(
	corpus driven.CorpusReader,
	taggers driven.TaggerRegistry,
	artifacts driven.ArtifactStore,
	lexicons driven.LexiconLoader,
	constraints driven.ConstraintLoader,
) *PipelineService {
	return &PipelineService{
		corpus:      corpus,
		taggers:     taggers,
		artifacts:   artifacts,
		lexicons:    lexicons,
		constraints: constraints,
	}
}

// SetTagCache enables caching of tagger output.
func (s *PipelineService) SetTagCache(cache driven.TagCache) {
	s.cache = cache
}

// SetWatcher enables recoding on constraint file changes.
func (s *PipelineService) SetWatcher(watcher driven.FileWatcher) {
	s.watcher = watcher
}

// stage is one step of the cascade.
type stage struct {
	name string
	run  func(ctx context.Context, cfg domain.RunConfig, input string) (*domain.StageResult, error)
}

// Run executes every stage downstream of the request's entry point.
// Required inputs of later stages are checked before anything runs.
func (s *PipelineService) Run(
	ctx context.Context,
	cfg domain.RunConfig,
	req driving.CascadeRequest,
) ([]domain.StageResult, error) {
	stages := []stage{
		{domain.StageTag, s.Tag},
		{domain.StageSelect, s.Select},
		{domain.StagePronounce, s.Pronounce},
		{domain.StageCode, s.Code},
	}

	var start int
	var input string
	switch {
	case req.Dataset != "":
		start, input = 3, req.Dataset
	case req.Targets != "":
		start, input = 2, req.Targets
	case req.Tagged != "":
		start, input = 1, req.Tagged
	case req.CorpusDir != "":
		start, input = 0, req.CorpusDir
	default:
		return nil, fmt.Errorf("no corpus or artifact given: %w", domain.ErrInvalidInput)
	}

	if start <= 2 && cfg.LexiconPath == "" {
		return nil, domain.ErrLexiconRequired
	}
	if cfg.ConstraintsPath == "" {
		return nil, domain.ErrConstraintsRequired
	}

	if start == 0 {
		if err := s.resolveLanguage(ctx, &cfg, req.CorpusDir); err != nil {
			return nil, err
		}
	}

	logger.Debug("cascade from %s (%s), language %s", stages[start].name, input, cfg.Label())

	results := make([]domain.StageResult, 0, len(stages)-start)
	for _, st := range stages[start:] {
		result, err := st.run(ctx, cfg, input)
		if err != nil {
			return results, fmt.Errorf("%s: %w", st.name, err)
		}
		results = append(results, *result)
		input = result.Path
	}

	return results, nil
}

// resolveLanguage detects the corpus language when none is configured.
func (s *PipelineService) resolveLanguage(ctx context.Context, cfg *domain.RunConfig, corpusDir string) error {
	if cfg.Language != "" {
		return nil
	}

	lang, err := s.corpus.Detect(ctx, corpusDir)
	if err != nil {
		return fmt.Errorf("detect language: %w", err)
	}
	logger.Info("detected corpus language %s", lang)
	cfg.Language = lang
	return nil
}
