package mcp

import (
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Contacts manages the address book.
	Contacts driving.ContactService

	// Notes manages notes and tags.
	Notes driving.NoteService

	// Settings supplies the default birthdays window.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Contacts == nil {
		return ErrMissingContactService
	}
	if p.Notes == nil {
		return ErrMissingNoteService
	}
	// Settings is optional; the default horizon applies without it
	return nil
}
