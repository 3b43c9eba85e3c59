// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/ordo/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewRuns lists persisted similarity runs.
	ViewRuns
	// ViewScores shows the adjective scores of one run.
	ViewScores
	// ViewSettings is the settings view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewRuns:
		return "runs"
	case ViewScores:
		return "scores"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// RunsLoaded carries the list of runs from the service.
type RunsLoaded struct {
	Runs []domain.Run
	Err  error
}

// RunSelected signals a run was chosen for the scores view.
type RunSelected struct {
	Run domain.Run
}

// RunDeleted signals a run was removed.
type RunDeleted struct {
	ID  string
	Err error
}

// ScoresLoaded carries the adjective scores of a run.
type ScoresLoaded struct {
	RunID  string
	Scores []domain.SimilarityScore
	Err    error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingSaved signals a single setting was stored.
type SettingSaved struct {
	Key string
	Err error
}
