package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for lotus resources.
	uriScheme = "lotus://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "contacts",
		Name:        "contacts",
		Description: "Every contact in the address book",
		MIMEType:    "application/json",
	}, s.handleContactsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "notes",
		Name:        "notes",
		Description: "Every note, ordered by ID",
		MIMEType:    "application/json",
	}, s.handleNotesResource)

	// Template for a single note body.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "notes/{noteId}",
		Name:        "note-content",
		Description: "Text of a specific note",
		MIMEType:    "text/plain",
	}, s.handleNoteContentResource)
}

// handleContactsResource returns every contact in name order.
func (s *Server) handleContactsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	contacts, err := s.ports.Contacts.List(ctx, domain.ContactSort{Field: domain.SortByName})
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	infos := make([]ContactOutput, len(contacts))
	for i := range contacts {
		infos[i] = toContactOutput(&contacts[i])
	}

	return jsonResource(req.Params.URI, infos)
}

// handleNotesResource returns every note.
func (s *Server) handleNotesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	notes, err := s.ports.Notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	infos := make([]NoteOutput, len(notes))
	for i := range notes {
		infos[i] = toNoteOutput(&notes[i])
	}

	return jsonResource(req.Params.URI, infos)
}

// handleNoteContentResource returns the text of a specific note.
func (s *Server) handleNoteContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract noteId from URI: lotus://notes/{noteId}
	id, ok := extractNoteID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	note, err := s.ports.Notes.Get(ctx, id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     note.Text,
		}},
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractNoteID extracts the note ID from a URI like lotus://notes/{noteId}.
func extractNoteID(uri string) (int, bool) {
	const prefix = uriScheme + "notes/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
