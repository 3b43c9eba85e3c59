package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
	"github.com/custodia-labs/ordo/internal/logger"
)

// Ensure FlexibilityService implements the interface.
var _ driving.FlexibilityService = (*FlexibilityService)(nil)

// FlexibilityService reports how freely nouns and adjectives change order.
type FlexibilityService struct {
	artifacts driven.ArtifactStore
}

// NewFlexibilityService creates a new flexibility service.
func NewFlexibilityService(artifacts driven.ArtifactStore) *FlexibilityService {
	return &FlexibilityService{artifacts: artifacts}
}

// Compute counts orders per lemma, writes the noun, adjective and
// flexible-pair artifacts and returns them.
func (s *FlexibilityService) Compute(
	ctx context.Context,
	cfg domain.RunConfig,
	datasetPath string,
) (*domain.FlexibilityReport, error) {
	logger.Section("Flexibility")

	pairs, err := s.artifacts.ReadPairs(ctx, datasetPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	report := &domain.FlexibilityReport{
		Nouns:      CountOrders(pairs, func(p domain.PairToken) string { return p.Noun().Lemma }),
		Adjectives: CountOrders(pairs, func(p domain.PairToken) string { return p.Adjective().Lemma }),
	}

	flexible := make(map[string]bool, len(report.Adjectives))
	for _, a := range report.Adjectives {
		flexible[a.Lemma] = a.IsFlexible()
	}
	for _, p := range pairs {
		if flexible[p.Adjective().Lemma] {
			report.Flexible = append(report.Flexible, p)
		}
	}
	logger.Debug("%d nouns, %d adjectives, %d pairs with a flexible adjective",
		len(report.Nouns), len(report.Adjectives), len(report.Flexible))

	nounsPath := cfg.ArtifactPath(domain.ArtifactNouns)
	if err := s.artifacts.WriteTable(ctx, nounsPath, orderTable(report.Nouns,
		"noun", "postadjectival", "preadjectival", "rate_postadjectival")); err != nil {
		return nil, fmt.Errorf("write nouns: %w", err)
	}

	adjsPath := cfg.ArtifactPath(domain.ArtifactAdjs)
	if err := s.artifacts.WriteTable(ctx, adjsPath, orderTable(report.Adjectives,
		"adjective", "prenominal", "postnominal", "rate_prenominal")); err != nil {
		return nil, fmt.Errorf("write adjectives: %w", err)
	}

	filteredPath := cfg.ArtifactPath(domain.ArtifactFiltered)
	if err := s.artifacts.WritePairs(ctx, filteredPath, report.Flexible); err != nil {
		return nil, fmt.Errorf("write flexible pairs: %w", err)
	}

	report.Paths = []string{nounsPath, adjsPath, filteredPath}
	return report, nil
}

// CountOrders counts the prenominal and postnominal tokens of each lemma
// selected by key, in order of first occurrence.
func CountOrders(pairs []domain.PairToken, key func(domain.PairToken) string) []domain.OrderStats {
	var stats []domain.OrderStats
	index := make(map[string]int)

	for _, p := range pairs {
		lemma := key(p)
		i, ok := index[lemma]
		if !ok {
			i = len(stats)
			index[lemma] = i
			stats = append(stats, domain.OrderStats{Lemma: lemma})
		}
		if p.Orientation() == domain.Prenominal {
			stats[i].Prenominal++
		} else {
			stats[i].Postnominal++
		}
	}

	return stats
}

// orderTable renders order counts with the given lemma, count and rate headers.
func orderTable(stats []domain.OrderStats, lemma, prenominal, postnominal, rate string) domain.Table {
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{
			s.Lemma,
			strconv.Itoa(s.Prenominal),
			strconv.Itoa(s.Postnominal),
			strconv.Itoa(s.Total()),
			strconv.FormatFloat(s.PrenominalRate(), 'g', -1, 64),
		}
	}
	return domain.Table{
		Header: []string{lemma, prenominal, postnominal, "total", rate},
		Rows:   rows,
	}
}
