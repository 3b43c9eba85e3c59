package domain

// Orientation is the position of an adjective relative to its noun.
type Orientation int

// Available orientations.
const (
	// Prenominal is the ADJ NOUN order.
	Prenominal Orientation = iota

	// Postnominal is the NOUN ADJ order.
	Postnominal
)

// String returns the string representation.
func (o Orientation) String() string {
	switch o {
	case Prenominal:
		return "prenominal"
	case Postnominal:
		return "postnominal"
	default:
		return "unknown"
	}
}

// Sign returns +1 for prenominal and -1 for postnominal.
// Constraint preferences are multiplied by this value so that
// positive codes always favour the prenominal order.
func (o Orientation) Sign() int {
	if o == Prenominal {
		return 1
	}
	return -1
}

// Sequence returns the part-of-speech sequence realising the orientation.
func (o Orientation) Sequence() []string {
	if o == Prenominal {
		return []string{TagAdjective, TagNoun}
	}
	return []string{TagNoun, TagAdjective}
}

// TargetSequences are the tag windows selected from tagged sentences,
// in the order they are searched.
func TargetSequences() [][]string {
	return [][]string{
		Postnominal.Sequence(),
		Prenominal.Sequence(),
	}
}

// PairKey identifies an adjective-noun pair type by lemma, independent of order.
type PairKey struct {
	Adjective string
	Noun      string
}

// PairToken is one adjective-noun pair occurrence inside a sentence.
// Tokens are kept in surface order, so Tokens[0] is the adjective
// exactly when the pair is prenominal.
type PairToken struct {
	// SentenceID is the ID of the containing sentence.
	SentenceID string `json:"sentence_id"`

	// ClientID is the speaker identifier of the containing sentence.
	ClientID string `json:"client_id,omitempty"`

	// AudioFile is the recording of the containing sentence.
	AudioFile string `json:"audio_file,omitempty"`

	// Sentence is the sentence text.
	Sentence string `json:"sentence"`

	// Tokens is the matched window in surface order.
	Tokens [2]TaggedToken `json:"tokens"`

	// Lemmas is the lemmatised containing sentence.
	Lemmas []string `json:"lemmas"`

	// PForms holds the phonological forms of Tokens, in the same order.
	// Empty until the pronunciation stage has run.
	PForms [2]string `json:"pforms,omitempty"`
}

// Orientation returns the order the pair was realised in.
func (p PairToken) Orientation() Orientation {
	if p.Tokens[0].Tag == TagAdjective {
		return Prenominal
	}
	return Postnominal
}

// Adjective returns the adjective token of the pair.
func (p PairToken) Adjective() TaggedToken {
	if p.Orientation() == Prenominal {
		return p.Tokens[0]
	}
	return p.Tokens[1]
}

// Noun returns the noun token of the pair.
func (p PairToken) Noun() TaggedToken {
	if p.Orientation() == Prenominal {
		return p.Tokens[1]
	}
	return p.Tokens[0]
}

// Key returns the order-independent pair type.
func (p PairToken) Key() PairKey {
	return PairKey{
		Adjective: p.Adjective().Lemma,
		Noun:      p.Noun().Lemma,
	}
}

// HasPForms returns true if both phonological forms are present.
func (p PairToken) HasPForms() bool {
	return p.PForms[0] != "" && p.PForms[1] != ""
}

// Record converts the pair into the input of the similarity pipeline.
func (p PairToken) Record() Record {
	lemmas := make([]string, len(p.Lemmas))
	copy(lemmas, p.Lemmas)
	return Record{
		Adjective:   p.Adjective().Lemma,
		Orientation: p.Orientation(),
		Lemmas:      lemmas,
	}
}

// Record is one adjective occurrence with its lemmatised sentence context.
// Records are immutable once produced by the selection stage.
type Record struct {
	// Adjective is the adjective lemma.
	Adjective string

	// Orientation is the order the adjective occurred in.
	Orientation Orientation

	// Lemmas is the lemmatised containing sentence, in order.
	Lemmas []string
}

// RecordsFromPairs converts pairs into similarity records, preserving order.
func RecordsFromPairs(pairs []PairToken) []Record {
	records := make([]Record, len(pairs))
	for i := range pairs {
		records[i] = pairs[i].Record()
	}
	return records
}
