package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/logger"
)

// Pronounce adds phonological forms to pairs from the configured lexicon.
// Pairs with a word missing from the lexicon are dropped.
func (s *PipelineService) Pronounce(ctx context.Context, cfg domain.RunConfig, targetsPath string) (*domain.StageResult, error) {
	logger.Section("Adding Phonological Forms")

	if cfg.LexiconPath == "" {
		return nil, domain.ErrLexiconRequired
	}

	lexicon, err := s.lexicons.Load(ctx, cfg.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	logger.Debug("lexicon %s has %d words", cfg.LexiconPath, lexicon.Len())

	pairs, err := s.artifacts.ReadPairs(ctx, targetsPath)
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}

	kept := AddPForms(pairs, lexicon)

	result := &domain.StageResult{
		Stage:   domain.StagePronounce,
		Path:    cfg.ArtifactPath(domain.ArtifactDataset),
		Input:   len(pairs),
		Output:  len(kept),
		Dropped: len(pairs) - len(kept),
	}
	logger.Info("missing pronunciations for %d target sequences, dropped %.1f%% of dataset",
		result.Dropped, result.DroppedShare()*100)

	if err := s.artifacts.WritePairs(ctx, result.Path, kept); err != nil {
		return nil, fmt.Errorf("write dataset: %w", err)
	}
	return result, nil
}

// AddPForms returns the pairs whose lowercased surface forms are both in
// the lexicon, with their phonological forms filled in.
func AddPForms(pairs []domain.PairToken, lexicon driven.Lexicon) []domain.PairToken {
	kept := make([]domain.PairToken, 0, len(pairs))

	for _, p := range pairs {
		first, ok1 := lexicon.Lookup(strings.ToLower(p.Tokens[0].Text))
		second, ok2 := lexicon.Lookup(strings.ToLower(p.Tokens[1].Text))
		if !ok1 || !ok2 {
			continue
		}
		p.PForms = [2]string{first, second}
		kept = append(kept, p)
	}

	return kept
}
