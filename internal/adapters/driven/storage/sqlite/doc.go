// Package sqlite persists similarity runs and tagger output in one SQLite
// database, using the pure Go modernc.org/sqlite driver.
//
// The Store hands out two views of the same connection:
//
//   - RunStore: runs, their settings and summary, and per-adjective scores
//   - TagCache: tagged tokens keyed by language, tagger and sentence text
//
// The schema lives in embedded migrations/NNN_name.up.sql files, applied in
// order at open time and recorded in schema_migrations. The database defaults
// to ~/.ordo/data/ordo.db and runs in WAL mode with foreign keys enabled, so
// deleting a run deletes its scores.
package sqlite
