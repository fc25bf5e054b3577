// Package mcp provides an MCP (Model Context Protocol) server adapter for lotus.
// It lets AI assistants look up contacts, upcoming birthdays and notes.
package mcp

import "errors"

// ErrMissingContactService is returned when the contact service is not provided.
var ErrMissingContactService = errors.New("mcp: contact service is required")

// ErrMissingNoteService is returned when the note service is not provided.
var ErrMissingNoteService = errors.New("mcp: note service is required")
