// Package sqlite persists Lotus state in a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements driven.SnapshotStore:
// the whole contact book and note collection are written in one transaction
// after every successful mutation and read back on startup.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Contacts and their phones, notes and their tags live in separate tables;
// the tag index is not stored and is rebuilt from note_tags on load.
//
// # Data Location
//
// By default, the database is stored at ~/.lotus/data/lotus.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
