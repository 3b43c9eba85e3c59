package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/logger"
)

// Tag tags every sentence of a corpus and writes the tagged artifact.
// When no language is configured it is detected from the corpus.
func (s *PipelineService) Tag(ctx context.Context, cfg domain.RunConfig, corpusDir string) (*domain.StageResult, error) {
	logger.Section("Tagging")

	if err := s.resolveLanguage(ctx, &cfg, corpusDir); err != nil {
		return nil, err
	}

	sentences, err := s.corpus.Read(ctx, corpusDir, cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	tagger, err := s.taggers.Build(cfg.Tagger.Provider.String(), cfg.Tagger.Config(cfg.Language))
	if err != nil {
		return nil, fmt.Errorf("build tagger: %w", err)
	}
	logger.Debug("tagging %d sentences with %s (%s)", len(sentences), tagger.Name(), tagger.Model())

	cached := 0
	for i := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tokens, hit, err := s.tagSentence(ctx, tagger, cfg.Language, sentences[i].Text)
		if err != nil {
			return nil, fmt.Errorf("tag sentence %s: %w", sentences[i].ID, err)
		}
		if hit {
			cached++
		}
		sentences[i].Tokens = tokens
		logger.Progress("tag", i+1, len(sentences))
	}
	if s.cache != nil {
		logger.Debug("%d of %d sentences served from cache", cached, len(sentences))
	}

	path := cfg.ArtifactPath(domain.ArtifactTagged)
	if err := s.artifacts.WriteSentences(ctx, path, sentences); err != nil {
		return nil, fmt.Errorf("write tagged sentences: %w", err)
	}

	return &domain.StageResult{
		Stage:  domain.StageTag,
		Path:   path,
		Input:  len(sentences),
		Output: len(sentences),
	}, nil
}

// tagSentence returns the tokens of text, consulting the cache first.
// Lemmas are lowercased before caching.
func (s *PipelineService) tagSentence(
	ctx context.Context,
	tagger driven.Tagger,
	language, text string,
) ([]domain.TaggedToken, bool, error) {
	key := tagger.Name() + "/" + tagger.Model()

	if s.cache != nil {
		tokens, err := s.cache.Get(ctx, language, key, text)
		if err == nil {
			return tokens, true, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("read tag cache: %w", err)
		}
	}

	tokens, err := tagger.Tag(ctx, text)
	if err != nil {
		return nil, false, err
	}
	for i := range tokens {
		tokens[i].Lemma = strings.ToLower(tokens[i].Lemma)
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, language, key, text, tokens); err != nil {
			return nil, false, fmt.Errorf("write tag cache: %w", err)
		}
	}
	return tokens, false, nil
}
