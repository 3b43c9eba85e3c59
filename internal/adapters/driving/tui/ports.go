// Package tui provides an interactive terminal browser for similarity runs.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Runs provides access to persisted similarity runs.
	Runs driving.RunService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(runs driving.RunService, settings driving.SettingsService) *Ports {
	return &Ports{
		Runs:     runs,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Runs == nil {
		return ErrMissingRunService
	}
	return nil
}
