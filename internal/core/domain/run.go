package domain

import "time"

// RunKind identifies what produced a persisted run.
type RunKind string

// Available run kinds.
const (
	// RunKindSimilarity is a semantic similarity computation.
	RunKindSimilarity RunKind = "similarity"
)

// SimilarityScore is the cosine between an adjective's prenominal
// and postnominal embeddings.
type SimilarityScore struct {
	// Adjective is the adjective lemma.
	Adjective string `json:"adjective"`

	// Cosine is in [-1, 1]. Zero for a degenerate embedding.
	Cosine float64 `json:"cosine_similarity"`
}

// SimilaritySettings holds the parameters of a similarity computation.
type SimilaritySettings struct {
	// MinTokenCount is the minimum token count required in each orientation.
	MinTokenCount int `json:"min_token_count"`

	// Dimensions is the requested embedding dimension.
	Dimensions int `json:"dimensions"`

	// PositivePPMI clamps negative PMI values to zero.
	PositivePPMI bool `json:"positive_ppmi"`

	// StrictDimensions fails instead of clamping an oversized dimension.
	StrictDimensions bool `json:"strict_dimensions"`
}

// RunSummary holds the aggregate results of a similarity run.
type RunSummary struct {
	// Adjectives is the number of adjectives surviving the frequency filter.
	Adjectives int `json:"adjectives"`

	// ContextLemmas is the size of the context vocabulary.
	ContextLemmas int `json:"context_lemmas"`

	// Records is the number of input records.
	Records int `json:"records"`

	// Dimensions is the embedding dimension actually used.
	Dimensions int `json:"dimensions"`

	// RequestedDimensions is the embedding dimension asked for.
	RequestedDimensions int `json:"requested_dimensions"`

	// ExplainedVariance is the explained-variance ratio per component.
	ExplainedVariance []float64 `json:"explained_variance,omitempty"`
}

// Clamped returns true if fewer dimensions were used than requested.
func (s RunSummary) Clamped() bool {
	return s.Dimensions < s.RequestedDimensions
}

// Run is a persisted similarity computation.
type Run struct {
	// ID is the unique identifier.
	ID string

	// Kind is what produced the run.
	Kind RunKind

	// Language is the corpus language code.
	Language string

	// Input is the dataset the run was computed from.
	Input string

	// Settings are the parameters of the run.
	Settings SimilaritySettings

	// Summary holds aggregate results.
	Summary RunSummary

	// CreatedAt is when the run was recorded.
	CreatedAt time.Time
}

// MixtureComponent is one Gaussian of a mixture fitted to similarity scores.
type MixtureComponent struct {
	Weight  float64 `json:"weight"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Members int     `json:"members"`
}

// Embeddings holds the prenominal and postnominal embedding of each adjective.
// Row i of both blocks belongs to Adjectives[i].
type Embeddings struct {
	Adjectives  []string    `json:"adjectives"`
	Prenominal  [][]float64 `json:"prenominal"`
	Postnominal [][]float64 `json:"postnominal"`
}
