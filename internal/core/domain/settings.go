package domain

import "fmt"

// TaggerProvider identifies a part-of-speech tagging service.
type TaggerProvider string

// Available tagger providers.
const (
	// TaggerSpacy is a spaCy pipeline served over HTTP.
	TaggerSpacy TaggerProvider = "spacy"

	// TaggerStanza is a Stanza pipeline served over HTTP.
	TaggerStanza TaggerProvider = "stanza"
)

// IsValid returns true if the provider is recognised.
func (p TaggerProvider) IsValid() bool {
	switch p {
	case TaggerSpacy, TaggerStanza:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p TaggerProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p TaggerProvider) Description() string {
	switch p {
	case TaggerSpacy:
		return "spaCy (HTTP service)"
	case TaggerStanza:
		return "Stanza (HTTP service)"
	default:
		return "Unknown"
	}
}

// DefaultModel returns the model used when none is configured.
// Stanza services select their pipeline by language alone.
func (p TaggerProvider) DefaultModel(language string) string {
	if p == TaggerSpacy && language != "" {
		return fmt.Sprintf("%s_core_news_sm", language)
	}
	return ""
}

// AllTaggerProviders returns all available tagger providers.
func AllTaggerProviders() []TaggerProvider {
	return []TaggerProvider{TaggerSpacy, TaggerStanza}
}

// TaggerSettings holds tagger service configuration.
type TaggerSettings struct {
	// Provider is the tagging service.
	Provider TaggerProvider

	// BaseURL is the service endpoint.
	BaseURL string

	// Model is the pipeline name. Empty selects the provider default.
	Model string

	// RequestsPerSecond throttles requests. Zero means unlimited.
	RequestsPerSecond float64
}

// Config returns the settings as a generic map for the tagger registry.
func (t TaggerSettings) Config(language string) map[string]any {
	model := t.Model
	if model == "" {
		model = t.Provider.DefaultModel(language)
	}
	return map[string]any{
		"base_url":            t.BaseURL,
		"model":               model,
		"language":            language,
		"requests_per_second": t.RequestsPerSecond,
	}
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Language is the ISO-639 code of the corpus language.
	Language string

	// OutputDir is where stage artifacts are written.
	OutputDir string

	// Similarity holds the semantic pipeline parameters.
	Similarity SimilaritySettings

	// Tagger holds tagger service settings.
	Tagger TaggerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Language is left unset: every run names its corpus language.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		OutputDir: ".",
		Similarity: SimilaritySettings{
			MinTokenCount: 2,
			Dimensions:    128,
			PositivePPMI:  true,
		},
		Tagger: TaggerSettings{
			Provider: TaggerSpacy,
			BaseURL:  "http://localhost:8080",
		},
	}
}
