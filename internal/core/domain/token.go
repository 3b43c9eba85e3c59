package domain

// Universal part-of-speech tags used by the pipeline.
// Tagger adapters map their native tag sets onto these values.
const (
	TagAdjective = "ADJ"
	TagNoun      = "NOUN"
)

// TaggedToken is a single token as produced by a part-of-speech tagger.
// Every tagger adapter populates this type regardless of the shape of
// its native result.
type TaggedToken struct {
	// Text is the surface form as it appears in the sentence.
	Text string `json:"text"`

	// Lemma is the lowercased dictionary form.
	Lemma string `json:"lemma"`

	// Tag is the universal part-of-speech tag (e.g. ADJ, NOUN).
	Tag string `json:"tag"`
}

// Sentence is a corpus transcript sentence and its tagging.
type Sentence struct {
	// ID identifies the sentence within its corpus (the audio clip path by default).
	ID string `json:"id"`

	// ClientID is the speaker identifier from the corpus.
	ClientID string `json:"client_id,omitempty"`

	// AudioFile is the recording the sentence was read in.
	AudioFile string `json:"audio_file,omitempty"`

	// Text is the punctuation-stripped sentence.
	Text string `json:"text"`

	// Tokens holds the tagger output. Empty until the sentence is tagged.
	Tokens []TaggedToken `json:"tokens,omitempty"`
}

// Lemmas returns the lemma of every token in order.
func (s Sentence) Lemmas() []string {
	lemmas := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		lemmas[i] = t.Lemma
	}
	return lemmas
}

// Tags returns the part-of-speech tag of every token in order.
func (s Sentence) Tags() []string {
	tags := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		tags[i] = t.Tag
	}
	return tags
}

// IsTagged returns true if the sentence carries tagger output.
func (s Sentence) IsTagged() bool {
	return len(s.Tokens) > 0
}
