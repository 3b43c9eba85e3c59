package semantic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// Filtered is a co-occurrence pair restricted to adjectives attested
// often enough in both orientations. Row i of both matrices is
// Adjectives.Lemma(i).
type Filtered struct {
	Adjectives  *Vocabulary
	Prenominal  *mat.Dense
	Postnominal *mat.Dense

	// PrenominalTokens and PostnominalTokens are aligned with Adjectives.
	PrenominalTokens  []int
	PostnominalTokens []int
}

// Filter keeps the adjectives whose prenominal and postnominal token
// counts are both at least threshold, renumbered contiguously in their
// original order. It returns domain.ErrEmptyVocabulary when none survive
// and domain.ErrEmptyCooccurrence when a surviving orientation holds no
// counts at all.
func Filter(co *Cooccurrence, adjectives *Vocabulary, threshold int) (*Filtered, error) {
	var keep []int
	for i := 0; i < adjectives.Len(); i++ {
		if co.PrenominalTokens[i] >= threshold && co.PostnominalTokens[i] >= threshold {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("threshold %d: %w", threshold, domain.ErrEmptyVocabulary)
	}
	if co.Prenominal == nil {
		return nil, fmt.Errorf("no context lemmas: %w", domain.ErrEmptyCooccurrence)
	}

	_, cols := co.Prenominal.Dims()
	f := &Filtered{
		Adjectives:        NewVocabulary(),
		Prenominal:        mat.NewDense(len(keep), cols, nil),
		Postnominal:       mat.NewDense(len(keep), cols, nil),
		PrenominalTokens:  make([]int, len(keep)),
		PostnominalTokens: make([]int, len(keep)),
	}
	for n, i := range keep {
		f.Adjectives.add(adjectives.Lemma(i))
		f.Prenominal.SetRow(n, co.Prenominal.RawRowView(i))
		f.Postnominal.SetRow(n, co.Postnominal.RawRowView(i))
		f.PrenominalTokens[n] = co.PrenominalTokens[i]
		f.PostnominalTokens[n] = co.PostnominalTokens[i]
	}

	if mat.Sum(f.Prenominal) == 0 {
		return nil, fmt.Errorf("prenominal: %w", domain.ErrEmptyCooccurrence)
	}
	if mat.Sum(f.Postnominal) == 0 {
		return nil, fmt.Errorf("postnominal: %w", domain.ErrEmptyCooccurrence)
	}
	return f, nil
}

// Len returns the number of surviving adjectives.
func (f *Filtered) Len() int {
	return f.Adjectives.Len()
}

// Stacked returns the prenominal rows followed by the postnominal rows.
func (f *Filtered) Stacked() *mat.Dense {
	var stacked mat.Dense
	stacked.Stack(f.Prenominal, f.Postnominal)
	return &stacked
}
