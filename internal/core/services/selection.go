package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/logger"
)

// Select extracts adjective-noun pairs from tagged sentences.
// Sentences without a pair are counted as dropped.
func (s *PipelineService) Select(ctx context.Context, cfg domain.RunConfig, taggedPath string) (*domain.StageResult, error) {
	logger.Section("Selecting Targets")

	sentences, err := s.artifacts.ReadSentences(ctx, taggedPath)
	if err != nil {
		return nil, fmt.Errorf("read tagged sentences: %w", err)
	}

	var pairs []domain.PairToken
	matched := 0
	for i := range sentences {
		found := SelectPairs(sentences[i])
		if len(found) > 0 {
			matched++
		}
		pairs = append(pairs, found...)
		logger.Progress("select", i+1, len(sentences))
	}
	logger.Debug("%d pairs in %d of %d sentences", len(pairs), matched, len(sentences))

	path := cfg.ArtifactPath(domain.ArtifactTargets)
	if err := s.artifacts.WritePairs(ctx, path, pairs); err != nil {
		return nil, fmt.Errorf("write targets: %w", err)
	}

	return &domain.StageResult{
		Stage:   domain.StageSelect,
		Path:    path,
		Input:   len(sentences),
		Output:  len(pairs),
		Dropped: len(sentences) - matched,
	}, nil
}

// SelectPairs returns one pair for every window of the sentence whose tags
// equal a target sequence, sequence by sequence, left to right. Windows may
// end on the last token and may overlap.
func SelectPairs(sentence domain.Sentence) []domain.PairToken {
	var pairs []domain.PairToken

	for _, seq := range domain.TargetSequences() {
		for i := 0; i+len(seq) <= len(sentence.Tokens); i++ {
			if !matches(sentence.Tokens[i:i+len(seq)], seq) {
				continue
			}
			pairs = append(pairs, domain.PairToken{
				SentenceID: sentence.ID,
				ClientID:   sentence.ClientID,
				AudioFile:  sentence.AudioFile,
				Sentence:   sentence.Text,
				Tokens:     [2]domain.TaggedToken{sentence.Tokens[i], sentence.Tokens[i+1]},
				Lemmas:     sentence.Lemmas(),
			})
		}
	}

	return pairs
}

func matches(tokens []domain.TaggedToken, seq []string) bool {
	for i, tag := range seq {
		if tokens[i].Tag != tag {
			return false
		}
	}
	return true
}
