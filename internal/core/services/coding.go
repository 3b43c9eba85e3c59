package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/logger"
)

// Columns of the coded output that precede and follow the constraints.
var (
	codedLeadColumns = []string{
		"sentence_id", "client_id", "audio_file", "sentence",
		"target_words", "target_tags", "NOUN", "ADJECTIVE", "target_lemmas",
		"pform1", "pform2",
	}
	codedTrailColumns = []string{"length", "relative_frequency", "outcome", "FIXED"}
)

// Code writes the constraint-coded table of a dataset.
// Pairs without phonological forms are dropped.
func (s *PipelineService) Code(ctx context.Context, cfg domain.RunConfig, datasetPath string) (*domain.StageResult, error) {
	logger.Section("Coding Constraints")

	if cfg.ConstraintsPath == "" {
		return nil, domain.ErrConstraintsRequired
	}

	constraints, err := s.constraints.Load(ctx, cfg.ConstraintsPath)
	if err != nil {
		return nil, fmt.Errorf("load constraints: %w", err)
	}

	pairs, err := s.artifacts.ReadPairs(ctx, datasetPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	usable := make([]domain.PairToken, 0, len(pairs))
	for _, p := range pairs {
		if p.HasPForms() {
			usable = append(usable, p)
		}
	}
	if dropped := len(pairs) - len(usable); dropped > 0 {
		logger.Warn("%d pairs have no phonological forms and were skipped", dropped)
	}

	coded := CodePairs(usable, constraints)
	logger.Debug("coded %d pairs for %d constraints", len(coded), len(constraints))

	path := cfg.ArtifactPath(domain.ArtifactOutput)
	if err := s.artifacts.WriteTable(ctx, path, CodedTable(coded, constraints)); err != nil {
		return nil, fmt.Errorf("write coded output: %w", err)
	}

	return &domain.StageResult{
		Stage:   domain.StageCode,
		Path:    path,
		Input:   len(pairs),
		Output:  len(coded),
		Dropped: len(pairs) - len(coded),
	}, nil
}

// WatchCode codes the dataset, then recodes it every time the constraint
// file changes. It returns when ctx is cancelled.
func (s *PipelineService) WatchCode(
	ctx context.Context,
	cfg domain.RunConfig,
	datasetPath string,
	onCode func(*domain.StageResult, error),
) error {
	if s.watcher == nil {
		return errors.New("file watching is not configured")
	}
	if cfg.ConstraintsPath == "" {
		return domain.ErrConstraintsRequired
	}

	changes, err := s.watcher.Watch(ctx, cfg.ConstraintsPath)
	if err != nil {
		return fmt.Errorf("watch constraints: %w", err)
	}

	onCode(s.Code(ctx, cfg, datasetPath))
	for range changes {
		logger.Info("%s changed, recoding", cfg.ConstraintsPath)
		onCode(s.Code(ctx, cfg, datasetPath))
	}
	return nil
}

// CodePairs codes every pair against the constraints. Each code is the
// pair's preference multiplied by +1 when it is prenominal and -1 when it
// is postnominal, so positive codes always favour the ADJ NOUN order.
func CodePairs(pairs []domain.PairToken, constraints []domain.Constraint) []domain.CodedPair {
	counts := make(map[domain.PairKey][2]int)
	for _, p := range pairs {
		c := counts[p.Key()]
		c[p.Orientation()]++
		counts[p.Key()] = c
	}

	coded := make([]domain.CodedPair, len(pairs))
	for i, p := range pairs {
		sign := p.Orientation().Sign()
		realised, reversed := domain.JoinPair(p.PForms)

		codes := make(map[string]int, len(constraints))
		for _, c := range constraints {
			codes[c.Name] = int(c.Prefer(realised, reversed)) * sign
		}

		c := counts[p.Key()]
		coded[i] = domain.CodedPair{
			Pair:              p,
			Codes:             codes,
			Length:            int(preferShortFirst(p.PForms)) * sign,
			RelativeFrequency: float64(c[domain.Prenominal]) / float64(c[domain.Prenominal]+c[domain.Postnominal]),
			Outcome:           outcome(p.Orientation()),
		}
	}

	return coded
}

// preferShortFirst favours the realised order when its first word has
// fewer syllables than its second.
func preferShortFirst(pforms [2]string) domain.Preference {
	first := domain.Syllables(pforms[0])
	second := domain.Syllables(pforms[1])
	switch {
	case first < second:
		return domain.PreferRealised
	case second < first:
		return domain.PreferReverse
	default:
		return domain.NoPreference
	}
}

func outcome(o domain.Orientation) int {
	if o == domain.Prenominal {
		return 1
	}
	return 0
}

// CodedTable lays coded pairs out as the output table, one constraint
// column per constraint in file order.
func CodedTable(coded []domain.CodedPair, constraints []domain.Constraint) domain.Table {
	header := make([]string, 0, len(codedLeadColumns)+len(constraints)+len(codedTrailColumns))
	header = append(header, codedLeadColumns...)
	for _, c := range constraints {
		header = append(header, c.Name)
	}
	header = append(header, codedTrailColumns...)

	rows := make([][]string, len(coded))
	for i, c := range coded {
		p := c.Pair
		row := make([]string, 0, len(header))
		row = append(row,
			p.SentenceID,
			p.ClientID,
			p.AudioFile,
			p.Sentence,
			p.Tokens[0].Text+" "+p.Tokens[1].Text,
			p.Tokens[0].Tag+" "+p.Tokens[1].Tag,
			p.Noun().Lemma,
			p.Adjective().Lemma,
			p.Tokens[0].Lemma+" "+p.Tokens[1].Lemma,
			p.PForms[0],
			p.PForms[1],
		)
		for _, con := range constraints {
			row = append(row, strconv.Itoa(c.Codes[con.Name]))
		}
		row = append(row,
			strconv.Itoa(c.Length),
			strconv.FormatFloat(c.RelativeFrequency, 'g', -1, 64),
			strconv.Itoa(c.Outcome),
			boolDigit(c.Fixed()),
		)
		rows[i] = row
	}

	return domain.Table{Header: header, Rows: rows}
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
