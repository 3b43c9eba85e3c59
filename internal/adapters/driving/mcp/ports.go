package mcp

import (
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Runs provides access to saved similarity runs.
	Runs driving.RunService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Runs == nil {
		return ErrMissingRunService
	}
	return nil
}
