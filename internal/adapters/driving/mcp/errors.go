// Package mcp provides an MCP (Model Context Protocol) server adapter for ordo.
// It lets AI assistants query saved similarity runs and adjective scores.
package mcp

import "errors"

// ErrMissingRunService is returned when the run service is not provided.
var ErrMissingRunService = errors.New("mcp: run service is required")
