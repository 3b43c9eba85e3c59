package domain

// OrderStats counts how often a lemma occurs in each adjective-noun order.
type OrderStats struct {
	// Lemma is the counted adjective or noun lemma.
	Lemma string

	// Prenominal is the number of ADJ NOUN tokens.
	Prenominal int

	// Postnominal is the number of NOUN ADJ tokens.
	Postnominal int
}

// Total returns the number of tokens in either order.
func (s OrderStats) Total() int {
	return s.Prenominal + s.Postnominal
}

// PrenominalRate returns the share of prenominal tokens, or 0 without tokens.
func (s OrderStats) PrenominalRate() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Prenominal) / float64(total)
}

// IsFlexible returns true if the lemma occurs in both orders.
func (s OrderStats) IsFlexible() bool {
	return s.Prenominal > 0 && s.Postnominal > 0
}

// FormStats summarises a set of unique phonological forms.
type FormStats struct {
	// Forms is the number of unique forms.
	Forms int

	// Mean, Median and Mode describe the syllable counts.
	Mean   float64
	Median float64
	Mode   int

	// ModeShare is the share of forms with the modal syllable count.
	ModeShare float64

	// Monosyllables counts one-syllable forms.
	Monosyllables int
	MonoShare     float64

	// Constraints holds one entry per constraint in file order.
	Constraints []ConstraintStats
}

// ConstraintStats summarises how many forms violate a constraint.
type ConstraintStats struct {
	Name       string
	Violations int
	Share      float64
}

// Description is the descriptive report over a dataset.
type Description struct {
	// Pairs is the number of pair tokens described.
	Pairs int

	Adjectives FormStats
	Nouns      FormStats
}
