package services

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

// Ensure DescribeService implements the interface.
var _ driving.DescribeService = (*DescribeService)(nil)

// DescribeService produces descriptive statistics of a dataset.
type DescribeService struct {
	artifacts   driven.ArtifactStore
	constraints driven.ConstraintLoader
}

// NewDescribeService creates a new describe service.
func NewDescribeService(artifacts driven.ArtifactStore, constraints driven.ConstraintLoader) *DescribeService {
	return &DescribeService{
		artifacts:   artifacts,
		constraints: constraints,
	}
}

// Describe summarises syllable counts and constraint violations over the
// unique adjective and noun forms of a dataset. Constraint statistics are
// omitted when no constraint file is configured.
func (s *DescribeService) Describe(
	ctx context.Context,
	cfg domain.RunConfig,
	datasetPath string,
) (*domain.Description, error) {
	var constraints []domain.Constraint
	if cfg.ConstraintsPath != "" {
		loaded, err := s.constraints.Load(ctx, cfg.ConstraintsPath)
		if err != nil {
			return nil, fmt.Errorf("load constraints: %w", err)
		}
		constraints = loaded
	}

	pairs, err := s.artifacts.ReadPairs(ctx, datasetPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	adjectives := make(map[string]struct{})
	nouns := make(map[string]struct{})
	described := 0
	for _, p := range pairs {
		if !p.HasPForms() {
			continue
		}
		described++
		adj, noun := p.PForms[0], p.PForms[1]
		if p.Orientation() == domain.Postnominal {
			adj, noun = noun, adj
		}
		adjectives[adj] = struct{}{}
		nouns[noun] = struct{}{}
	}

	return &domain.Description{
		Pairs:      described,
		Adjectives: DescribeForms(setMembers(adjectives), constraints),
		Nouns:      DescribeForms(setMembers(nouns), constraints),
	}, nil
}

// DescribeForms summarises the syllable counts of forms and how many of
// them violate each constraint.
func DescribeForms(forms []string, constraints []domain.Constraint) domain.FormStats {
	fs := domain.FormStats{Forms: len(forms)}
	for _, c := range constraints {
		fs.Constraints = append(fs.Constraints, domain.ConstraintStats{Name: c.Name})
	}
	if len(forms) == 0 {
		return fs
	}

	counts := make([]float64, len(forms))
	for i, f := range forms {
		counts[i] = float64(domain.Syllables(f))
		if counts[i] == 1 {
			fs.Monosyllables++
		}
		for j, c := range constraints {
			if c.Violates(f) {
				fs.Constraints[j].Violations++
			}
		}
	}
	sort.Float64s(counts)

	n := float64(len(forms))
	fs.Mean = stat.Mean(counts, nil)
	fs.Median = median(counts)
	mode, freq := mode(counts)
	fs.Mode = int(mode)
	fs.ModeShare = freq / n
	fs.MonoShare = float64(fs.Monosyllables) / n
	for j := range fs.Constraints {
		fs.Constraints[j].Share = float64(fs.Constraints[j].Violations) / n
	}

	return fs
}

// median returns the middle of sorted values, averaging the two middle
// values of an even-length slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode returns the most frequent of sorted values and its count.
// Ties go to the smallest value.
func mode(sorted []float64) (value, count float64) {
	var run float64
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > count {
			value, count = v, run
		}
	}
	return value, count
}

func setMembers(set map[string]struct{}) []string {
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}
