package driven

import "context"

// Lexicon maps orthographic words to syllabified phonological forms.
// Syllables are separated by '.'.
type Lexicon interface {
	// Lookup returns the phonological form of a lowercased word.
	Lookup(word string) (string, bool)

	// Len returns the number of entries.
	Len() int
}

// LexiconLoader reads a pronunciation lexicon.
type LexiconLoader interface {
	// Load reads the lexicon at path.
	// Returns domain.ErrInvalidLexicon when required columns are missing.
	Load(ctx context.Context, path string) (Lexicon, error)
}
