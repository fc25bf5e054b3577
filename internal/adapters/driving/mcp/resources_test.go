package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

func TestExtractNoteID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected int
		ok       bool
	}{
		{name: "valid note URI", uri: "lotus://notes/42", expected: 42, ok: true},
		{name: "invalid prefix", uri: "file://notes/42"},
		{name: "non-numeric id", uri: "lotus://notes/abc"},
		{name: "zero id", uri: "lotus://notes/0"},
		{name: "empty URI", uri: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := extractNoteID(tt.uri)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleContactsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns contacts", func(t *testing.T) {
		contacts := &mockContactService{contacts: []domain.Contact{*testContact(t)}}
		server := newTestServer(t, &Ports{Contacts: contacts, Notes: &mockNoteService{}})

		result, err := server.handleContactsResource(ctx, makeReadResourceRequest("lotus://contacts"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "alice@example.com")
		assert.Contains(t, result.Contents[0].Text, "+380501112233")
		assert.Equal(t, domain.SortByName, contacts.lastSort.Field)
	})

	t.Run("empty book is an empty array", func(t *testing.T) {
		server := newTestServer(t, &Ports{Contacts: &mockContactService{}, Notes: &mockNoteService{}})

		result, err := server.handleContactsResource(ctx, makeReadResourceRequest("lotus://contacts"))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		contacts := &mockContactService{err: errors.New("database error")}
		server := newTestServer(t, &Ports{Contacts: contacts, Notes: &mockNoteService{}})

		_, err := server.handleContactsResource(ctx, makeReadResourceRequest("lotus://contacts"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing contacts")
	})
}

func TestServer_handleNotesResource(t *testing.T) {
	notes := &mockNoteService{notes: []domain.Note{{ID: 7, Title: "Plans", Text: "trip"}}}
	server := newTestServer(t, &Ports{Contacts: &mockContactService{}, Notes: notes})

	result, err := server.handleNotesResource(context.Background(), makeReadResourceRequest("lotus://notes"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, `"id": 7`)
	assert.Contains(t, result.Contents[0].Text, "Plans")
}

func TestServer_handleNoteContentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns note text", func(t *testing.T) {
		notes := &mockNoteService{note: &domain.Note{ID: 2, Title: "Plans", Text: "trip to Lviv"}}
		server := newTestServer(t, &Ports{Contacts: &mockContactService{}, Notes: notes})

		result, err := server.handleNoteContentResource(ctx, makeReadResourceRequest("lotus://notes/2"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "trip to Lviv", result.Contents[0].Text)
	})

	t.Run("invalid URI is not found", func(t *testing.T) {
		server := newTestServer(t, &Ports{Contacts: &mockContactService{}, Notes: &mockNoteService{}})

		_, err := server.handleNoteContentResource(ctx, makeReadResourceRequest("lotus://invalid/uri"))

		require.Error(t, err)
	})

	t.Run("missing note is not found", func(t *testing.T) {
		notes := &mockNoteService{err: domain.ErrNotFound}
		server := newTestServer(t, &Ports{Contacts: &mockContactService{}, Notes: notes})

		_, err := server.handleNoteContentResource(ctx, makeReadResourceRequest("lotus://notes/9"))

		require.Error(t, err)
	})
}
