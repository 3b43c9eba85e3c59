package semantic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/logger"
)

// Options configures a pipeline run.
type Options struct {
	// MinTokenCount is the minimum number of tokens an adjective needs
	// in each orientation to be kept.
	MinTokenCount int

	// Dimensions is the requested embedding dimension.
	Dimensions int

	// PositivePPMI clamps negative PMI values to zero.
	PositivePPMI bool

	// StrictDimensions fails instead of clamping an oversized dimension.
	StrictDimensions bool
}

// OptionsFrom converts persisted settings into pipeline options.
func OptionsFrom(s domain.SimilaritySettings) Options {
	return Options{
		MinTokenCount:    s.MinTokenCount,
		Dimensions:       s.Dimensions,
		PositivePPMI:     s.PositivePPMI,
		StrictDimensions: s.StrictDimensions,
	}
}

// Result is the output of a pipeline run.
type Result struct {
	// Adjectives is the filtered adjective vocabulary. Row i of both
	// embedding blocks and Scores[i] belong to Adjectives.Lemma(i).
	Adjectives *Vocabulary

	// Context is the context lemma vocabulary.
	Context *Vocabulary

	// Prenominal holds the prenominal embeddings.
	Prenominal *mat.Dense

	// Postnominal holds the postnominal embeddings.
	Postnominal *mat.Dense

	// Scores holds one cosine per adjective in vocabulary order.
	Scores []domain.SimilarityScore

	// Summary holds aggregate statistics of the run.
	Summary domain.RunSummary
}

// Run executes the full pipeline over records.
func Run(records []domain.Record, opts Options) (*Result, error) {
	logger.Section("Semantic Similarity")

	adjectives, context := BuildVocabularies(records)
	logger.Debug("vocabularies: %d adjectives, %d context lemmas from %d records",
		adjectives.Len(), context.Len(), len(records))

	co := BuildCooccurrence(records, adjectives, context)

	filtered, err := Filter(co, adjectives, opts.MinTokenCount)
	if err != nil {
		return nil, fmt.Errorf("filter adjectives: %w", err)
	}
	logger.Debug("filtered matrices down to %d rows", filtered.Len())

	ppmi := PPMI(filtered.Stacked(), opts.PositivePPMI)

	reduction, err := Reduce(ppmi, opts.Dimensions, opts.StrictDimensions)
	if err != nil {
		return nil, fmt.Errorf("reduce dimensions: %w", err)
	}
	logger.Debug("embedded into %d dimensions", reduction.Dimensions)

	pre, post := reduction.Split(filtered.Len())
	cosines := RowCosines(pre, post)

	scores := make([]domain.SimilarityScore, len(cosines))
	for i, c := range cosines {
		scores[i] = domain.SimilarityScore{Adjective: filtered.Adjectives.Lemma(i), Cosine: c}
	}

	return &Result{
		Adjectives:  filtered.Adjectives,
		Context:     context,
		Prenominal:  pre,
		Postnominal: post,
		Scores:      scores,
		Summary: domain.RunSummary{
			Adjectives:          filtered.Len(),
			ContextLemmas:       context.Len(),
			Records:             len(records),
			Dimensions:          reduction.Dimensions,
			RequestedDimensions: reduction.RequestedDimensions,
			ExplainedVariance:   reduction.ExplainedVariance,
		},
	}, nil
}

// Embeddings returns both embedding blocks as plain rows.
func (r *Result) Embeddings() domain.Embeddings {
	return domain.Embeddings{
		Adjectives:  r.Adjectives.Lemmas(),
		Prenominal:  rows(r.Prenominal),
		Postnominal: rows(r.Postnominal),
	}
}

func rows(m *mat.Dense) [][]float64 {
	n, _ := m.Dims()
	out := make([][]float64, n)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}
