// Package file loads phonological constraints from tab-separated files.
//
// Each non-blank line holds a regular expression and a constraint name:
//
//	REGEX<TAB>NAME
//
// There is no header. A later line with an existing name replaces the
// pattern but keeps the original position.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.ConstraintLoader = (*Loader)(nil)

// Loader reads constraint files.
type Loader struct{}

// NewLoader creates a constraint loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the constraints at path in file order.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Constraint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open constraints: %w", err)
	}
	defer f.Close()

	var constraints []domain.Constraint
	index := make(map[string]int)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		c, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}

		if i, ok := index[c.Name]; ok {
			constraints[i] = c
			continue
		}
		index[c.Name] = len(constraints)
		constraints = append(constraints, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read constraints: %w", err)
	}

	return constraints, nil
}

func parseLine(text string) (domain.Constraint, error) {
	fields := strings.Split(text, "\t")
	if len(fields) < 2 {
		return domain.Constraint{}, fmt.Errorf("expected REGEX<TAB>NAME: %w", domain.ErrInvalidConstraint)
	}

	name := strings.TrimSpace(fields[1])
	if name == "" {
		return domain.Constraint{}, fmt.Errorf("empty constraint name: %w", domain.ErrInvalidConstraint)
	}

	pattern, err := regexp.Compile(fields[0])
	if err != nil {
		return domain.Constraint{}, fmt.Errorf("constraint %s: %w: %w", name, domain.ErrInvalidConstraint, err)
	}

	return domain.Constraint{Name: name, Pattern: pattern}, nil
}
