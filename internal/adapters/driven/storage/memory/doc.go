// Package memory provides in-memory implementations of driven ports.
// They back service and adapter tests and hold no data across runs.
package memory
