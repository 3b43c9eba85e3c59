// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CorpusReader: Reads transcript sentences from a speech corpus
//   - Tagger: Part-of-speech tags and lemmatises a sentence
//   - ArtifactStore: Reads and writes stage artifacts (JSON Lines, CSV)
//   - RunStore: Similarity run persistence
//   - ConfigStore: Application configuration
//
// # Stage Interfaces
//
// These are only needed by the stages that use them:
//
//   - Lexicon: Orthography to phonological form lookup. Needed by pforms.
//   - ConstraintLoader: Reads phonological constraints. Needed by code and describe.
//   - TagCache: Skips re-tagging known sentences. Can be nil.
//   - FileWatcher: Reports changes to a file. Only used by code --watch.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
