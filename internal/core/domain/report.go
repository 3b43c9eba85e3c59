package domain

// Pipeline stage names.
const (
	StageTag        = "tag"
	StageSelect     = "select"
	StagePronounce  = "pforms"
	StageCode       = "code"
	StageSimilarity = "similarity"
)

// StageResult describes one completed pipeline stage.
type StageResult struct {
	// Stage is the stage name.
	Stage string

	// Path is the artifact the stage wrote.
	Path string

	// Input is the number of items read.
	Input int

	// Output is the number of items written.
	Output int

	// Dropped is the number of input items discarded.
	Dropped int
}

// DroppedShare returns the share of input items discarded, in [0, 1].
func (r StageResult) DroppedShare() float64 {
	if r.Input == 0 {
		return 0
	}
	return float64(r.Dropped) / float64(r.Input)
}

// SimilarityReport is the outcome of a similarity computation.
type SimilarityReport struct {
	// Run is the persisted run.
	Run Run

	// Scores holds one score per filtered adjective in vocabulary order.
	Scores []SimilarityScore

	// Least holds the least similar adjectives, ascending.
	Least []SimilarityScore

	// Most holds the most similar adjectives, descending.
	Most []SimilarityScore

	// Mixture is the two-component fit over the cosines. Nil when undefined.
	Mixture []MixtureComponent

	// CosinesPath is the written scores file.
	CosinesPath string

	// EmbeddingsPath is the written embeddings file, if requested.
	EmbeddingsPath string
}

// FlexibilityReport holds per-lemma order counts over a dataset.
type FlexibilityReport struct {
	// Nouns counts each noun lemma; Prenominal is the ADJ NOUN (postadjectival) count.
	Nouns []OrderStats

	// Adjectives counts each adjective lemma.
	Adjectives []OrderStats

	// Flexible holds the pairs whose adjective occurs in both orders.
	Flexible []PairToken

	// Paths lists the written artifacts.
	Paths []string
}
