// Package file loads pronunciation lexicons from CSV or TSV files.
//
// A lexicon file has a header row naming at least the columns "word"
// and "phonological_form". Other columns are ignored. When a word has
// several entries, the first one wins.
package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// Required lexicon columns.
const (
	ColumnWord  = "word"
	ColumnPForm = "phonological_form"
)

// Ensure implementations satisfy the interfaces.
var (
	_ driven.LexiconLoader = (*Loader)(nil)
	_ driven.Lexicon       = (*Lexicon)(nil)
)

// Lexicon is an in-memory word to phonological form map.
type Lexicon struct {
	entries map[string]string
}

// NewLexicon creates a lexicon from a map. Used by tests and callers
// that build lexicons in memory.
func NewLexicon(entries map[string]string) *Lexicon {
	l := &Lexicon{entries: make(map[string]string, len(entries))}
	for w, p := range entries {
		l.entries[w] = p
	}
	return l
}

// Lookup returns the phonological form of word.
// A word whose first entry has an empty form is treated as missing.
func (l *Lexicon) Lookup(word string) (string, bool) {
	pform, ok := l.entries[word]
	if !ok || pform == "" {
		return "", false
	}
	return pform, true
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Loader reads lexicon files.
type Loader struct{}

// NewLoader creates a lexicon loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the lexicon at path. The separator is chosen by extension.
func (l *Loader) Load(ctx context.Context, path string) (driven.Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var comma rune
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		comma = ','
	case ".tsv":
		comma = '\t'
	default:
		return nil, fmt.Errorf("lexicon %s must be .csv or .tsv: %w", path, domain.ErrInvalidLexicon)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	return parse(f, comma)
}

func parse(r io.Reader, comma rune) (*Lexicon, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("lexicon is empty: %w", domain.ErrInvalidLexicon)
	}
	if err != nil {
		return nil, fmt.Errorf("read lexicon header: %w", err)
	}

	wordCol, pformCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case ColumnWord:
			wordCol = i
		case ColumnPForm:
			pformCol = i
		}
	}
	if wordCol < 0 {
		return nil, fmt.Errorf("missing %q column: %w", ColumnWord, domain.ErrInvalidLexicon)
	}
	if pformCol < 0 {
		return nil, fmt.Errorf("missing %q column: %w", ColumnPForm, domain.ErrInvalidLexicon)
	}

	lex := &Lexicon{entries: make(map[string]string)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read lexicon: %w", err)
		}
		if wordCol >= len(record) {
			continue
		}

		word := record[wordCol]
		if _, seen := lex.entries[word]; seen {
			continue
		}
		pform := ""
		if pformCol < len(record) {
			pform = strings.TrimSpace(record[pformCol])
		}
		lex.entries[word] = pform
	}

	return lex, nil
}
