// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Similar marks adjectives whose two orientations agree.
	Similar lipgloss.Color

	// Neutral marks cosines near zero.
	Neutral lipgloss.Color

	// Divergent marks adjectives whose orientations pull apart.
	Divergent lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#D97706"), // Amber
		Secondary:  lipgloss.Color("#0EA5E9"), // Sky
		Foreground: lipgloss.Color("#E5E7EB"),
		Muted:      lipgloss.Color("#6B7280"),
		Similar:    lipgloss.Color("#34D399"),
		Neutral:    lipgloss.Color("#FBBF24"),
		Divergent:  lipgloss.Color("#A78BFA"),
		Error:      lipgloss.Color("#F87171"),
		Border:     lipgloss.Color("#374151"),
	}
}

// Cosine thresholds for colouring scores.
const (
	similarThreshold   = 0.5
	divergentThreshold = 0.1
)

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for confirmations.
	Success lipgloss.Style

	// Similar, Neutral and Divergent colour cosine values.
	Similar   lipgloss.Style
	Neutral   lipgloss.Style
	Divergent lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Similar),

		Similar: lipgloss.NewStyle().
			Foreground(theme.Similar),

		Neutral: lipgloss.NewStyle().
			Foreground(theme.Neutral),

		Divergent: lipgloss.NewStyle().
			Foreground(theme.Divergent),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#111827")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Cosine returns the style for a cosine similarity value.
func (s *Styles) Cosine(cosine float64) lipgloss.Style {
	switch {
	case cosine >= similarThreshold:
		return s.Similar
	case cosine < divergentThreshold:
		return s.Divergent
	default:
		return s.Neutral
	}
}

// Bar renders a cosine in [-1, 1] as a bar of at most width cells.
// Negative values render as an empty bar.
func Bar(cosine float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(math.Max(0, math.Min(1, cosine)) * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}
