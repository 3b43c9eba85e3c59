// Package commonvoice reads sentences from Mozilla Common Voice releases.
//
// A release directory holds one directory per language, named by its
// ISO-639 code, each with a validated.tsv transcript file:
//
//	cv-corpus-7.0-2021-07-21/
//	  it/
//	    validated.tsv
//
// The first three columns of validated.tsv are client_id, path and
// sentence. The header row is skipped.
package commonvoice

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/logger"
)

// TranscriptFile is the transcript read from each language directory.
const TranscriptFile = "validated.tsv"

// extraPunctuation is stripped along with ASCII and Unicode punctuation.
const extraPunctuation = "—…„”“«»–"

// asciiPunctuation is every printable ASCII symbol. It includes
// symbols that Unicode does not class as punctuation.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// maxLineSize bounds a single transcript line.
const maxLineSize = 1 << 20

// Ensure Reader implements the interface.
var _ driven.CorpusReader = (*Reader)(nil)

// Reader reads Common Voice transcripts.
type Reader struct{}

// NewReader creates a Common Voice reader.
func NewReader() *Reader {
	return &Reader{}
}

// Detect returns the language of the single language directory in dir.
// When several are present the first in sorted order is used.
// dir may also be a language directory itself.
func (r *Reader) Detect(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read corpus %s: %w: %w", dir, domain.ErrCorpusNotFound, err)
	}

	var found []string
	for _, e := range entries {
		if !e.IsDir() || !IsLanguageCode(e.Name()) {
			continue
		}
		if fileExists(filepath.Join(dir, e.Name(), TranscriptFile)) {
			found = append(found, e.Name())
		}
	}
	sort.Strings(found)

	if len(found) == 0 {
		base := filepath.Base(filepath.Clean(dir))
		if IsLanguageCode(base) && fileExists(filepath.Join(dir, TranscriptFile)) {
			return base, nil
		}
		return "", fmt.Errorf("no language directory in %s: %w", dir, domain.ErrCorpusNotFound)
	}
	if len(found) > 1 {
		logger.Warn("corpus %s holds %d languages (%s), using %s",
			dir, len(found), strings.Join(found, ", "), found[0])
	}
	return found[0], nil
}

// Read returns the sentences of a language in file order.
// An empty language is detected.
func (r *Reader) Read(ctx context.Context, dir, lang string) ([]domain.Sentence, error) {
	if lang == "" {
		detected, err := r.Detect(ctx, dir)
		if err != nil {
			return nil, err
		}
		lang = detected
	}

	path := filepath.Join(dir, lang, TranscriptFile)
	if !fileExists(path) {
		if filepath.Base(filepath.Clean(dir)) != lang || !fileExists(filepath.Join(dir, TranscriptFile)) {
			return nil, fmt.Errorf("no %s for %q in %s: %w", TranscriptFile, lang, dir, domain.ErrCorpusNotFound)
		}
		path = filepath.Join(dir, TranscriptFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	logger.Debug("reading %s", path)

	var sentences []domain.Sentence
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		if line%logger.ProgressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		fields := strings.Split(strings.TrimRight(scanner.Text(), "\r"), "\t")
		if len(fields) < 3 {
			continue
		}

		audio := strings.TrimSpace(fields[1])
		sentences = append(sentences, domain.Sentence{
			ID:        audio,
			ClientID:  strings.TrimSpace(fields[0]),
			AudioFile: audio,
			Text:      StripPunctuation(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	return sentences, nil
}

// StripPunctuation removes punctuation from a sentence.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || strings.ContainsRune(asciiPunctuation, r) || strings.ContainsRune(extraPunctuation, r) {
			return -1
		}
		return r
	}, s)
}

// IsLanguageCode reports whether name is an ISO-639 language code,
// optionally followed by a region as in "pt-BR".
func IsLanguageCode(name string) bool {
	base, _, _ := strings.Cut(name, "-")
	if len(base) < 2 || len(base) > 3 || strings.ToLower(base) != base {
		return false
	}
	if _, err := language.ParseBase(base); err != nil {
		return false
	}
	_, err := language.Parse(name)
	return err == nil
}

// LanguageName returns the English name of a language code, or the code
// itself when it is unknown.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
