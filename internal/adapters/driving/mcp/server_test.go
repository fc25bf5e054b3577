package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil contact service returns error", func(t *testing.T) {
		ports := &Ports{Notes: &mockNoteService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingContactService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Contacts: &mockContactService{},
			Notes:    &mockNoteService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingContactService)
	})

	t.Run("nil note service returns error", func(t *testing.T) {
		ports := &Ports{Contacts: &mockContactService{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingNoteService)
	})

	t.Run("settings is optional", func(t *testing.T) {
		ports := &Ports{
			Contacts: &mockContactService{},
			Notes:    &mockNoteService{},
		}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Contacts: &mockContactService{},
			Notes:    &mockNoteService{},
			Settings: &mockSettingsService{},
		}
		assert.NoError(t, ports.Validate())
	})
}

func TestInstructions_NameToolsAndResources(t *testing.T) {
	for _, name := range []string{
		"get_contact", "find_contact", "list_contacts", "upcoming_birthdays",
		"add_note", "search_notes", "list_tags",
		"lotus://contacts", "lotus://notes", "lotus://notes/{noteId}",
	} {
		assert.Contains(t, instructions, name)
	}
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	server, err := NewServer(&Ports{
		Contacts: &mockContactService{},
		Notes:    &mockNoteService{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, server.RunHTTP(ctx, "127.0.0.1:0"))
}
