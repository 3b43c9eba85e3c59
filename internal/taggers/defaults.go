package taggers

import (
	"github.com/custodia-labs/ordo/internal/adapters/driven/tagger/spacy"
	"github.com/custodia-labs/ordo/internal/adapters/driven/tagger/stanza"
	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// RegisterDefaults registers all built-in taggers with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(domain.TaggerSpacy.String(), buildSpacy)
	r.Register(domain.TaggerStanza.String(), buildStanza)
}

// NewDefaultRegistry returns a registry holding the built-in taggers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// buildSpacy creates a spaCy tagger from generic config.
// Supported config keys:
//   - base_url (string): service endpoint
//   - model (string): pipeline name
//   - requests_per_second (float): throttle, 0 for unlimited
func buildSpacy(cfg map[string]any) (driven.Tagger, error) {
	return spacy.New(spacy.Config{
		BaseURL:           getStringFromConfig(cfg, "base_url"),
		Model:             getStringFromConfig(cfg, "model"),
		RequestsPerSecond: getFloatFromConfig(cfg, "requests_per_second"),
	}), nil
}

// buildStanza creates a Stanza tagger from generic config.
// Supported config keys are those of spaCy plus language (string).
func buildStanza(cfg map[string]any) (driven.Tagger, error) {
	return stanza.New(stanza.Config{
		BaseURL:           getStringFromConfig(cfg, "base_url"),
		Language:          getStringFromConfig(cfg, "language"),
		Model:             getStringFromConfig(cfg, "model"),
		RequestsPerSecond: getFloatFromConfig(cfg, "requests_per_second"),
	}), nil
}

func getStringFromConfig(cfg map[string]any, key string) string {
	s, _ := cfg[key].(string)
	return s
}

// getFloatFromConfig safely extracts a float from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getFloatFromConfig(cfg map[string]any, key string) float64 {
	switch v := cfg[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
