// Package file stores pipeline artifacts on the local filesystem.
//
// Sentence and pair artifacts are JSON Lines, one typed record per line,
// so stage outputs are read back without re-parsing stringified lists.
// Tables are written as CSV with a header row.
package file

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// maxLineSize bounds a single JSON Lines record.
const maxLineSize = 16 << 20

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store reads and writes artifacts as files.
type Store struct{}

// NewStore creates an artifact store.
func NewStore() *Store {
	return &Store{}
}

// WriteSentences writes tagged sentences to path.
func (s *Store) WriteSentences(ctx context.Context, path string, sentences []domain.Sentence) error {
	return writeLines(ctx, path, sentences)
}

// ReadSentences reads tagged sentences from path.
func (s *Store) ReadSentences(ctx context.Context, path string) ([]domain.Sentence, error) {
	return readLines[domain.Sentence](ctx, path)
}

// WritePairs writes pair tokens to path.
func (s *Store) WritePairs(ctx context.Context, path string, pairs []domain.PairToken) error {
	return writeLines(ctx, path, pairs)
}

// ReadPairs reads pair tokens from path.
func (s *Store) ReadPairs(ctx context.Context, path string) ([]domain.PairToken, error) {
	return readLines[domain.PairToken](ctx, path)
}

// WriteTable writes a table to path as CSV.
func (s *Store) WriteTable(ctx context.Context, path string, table domain.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFile(path, func(w *bufio.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(table.Header); err != nil {
			return err
		}
		if err := cw.WriteAll(table.Rows); err != nil {
			return err
		}
		return cw.Error()
	})
}

// WriteJSON writes v to path as indented JSON.
func (s *Store) WriteJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFile(path, func(w *bufio.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

func writeLines[T any](ctx context.Context, path string, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFile(path, func(w *bufio.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for i := range items {
			if err := enc.Encode(items[i]); err != nil {
				return fmt.Errorf("encode record %d: %w", i+1, err)
			}
		}
		return nil
	})
}

func readLines[T any](ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var items []T
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var item T
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			return nil, fmt.Errorf("%s:%d: %w: %w", path, line, domain.ErrInvalidInput, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	return items, nil
}

// writeFile creates path and its parent directory and writes through fn.
func writeFile(path string, fn func(w *bufio.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create artifact directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
