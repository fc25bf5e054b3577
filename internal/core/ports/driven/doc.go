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
//   - ContactStore: Name-keyed contact records with secondary-key lookup
//   - NoteStore: ID-keyed note records with the tag inverted index
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SnapshotStore: Durable state. Without it, state lives for one process.
//   - Validator: Phone and email format checks. Without it, any non-empty value is accepted.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
