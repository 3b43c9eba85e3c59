// Package domain defines the core entities of the ordo pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Sentence: A transcript sentence with its tagged tokens
//   - PairToken: One adjective-noun pair occurrence in a sentence
//   - Record: The typed input of the semantic similarity pipeline
//   - Constraint: A named phonological constraint regular expression
//   - Run: A persisted similarity computation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
