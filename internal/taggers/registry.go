// Package taggers builds part-of-speech tagger adapters by provider name.
package taggers

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.TaggerRegistry = (*Registry)(nil)

// Registry maps provider names to their builders.
// It allows dynamic construction of taggers from configuration.
type Registry struct {
	builders map[string]driven.TaggerBuilder
}

// NewRegistry creates a new, empty tagger registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]driven.TaggerBuilder),
	}
}

// Register adds a tagger builder to the registry.
// Name should match the tagger's Name() return value.
func (r *Registry) Register(name string, builder driven.TaggerBuilder) {
	r.builders[name] = builder
}

// Build creates a tagger by provider name with the given config.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Tagger, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown tagger %q: %w", name, domain.ErrUnsupportedType)
	}
	return builder(cfg)
}

// Has returns true if a tagger with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered provider names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
