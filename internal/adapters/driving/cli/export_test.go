package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

func TestExport_Stdout(t *testing.T) {
	defer setupTestServices()()
	mustExecute("phone", "add", "bob", "+380501112233", "--label", "work")
	mustExecute("note", "add", "Shopping", "milk", "--tags", "home")

	out, err := executeCommand("export")

	require.NoError(t, err)
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "name: bob")
	assert.Contains(t, out, "+380501112233")
	assert.Contains(t, out, "title: Shopping")
	assert.Contains(t, out, "next_note_id: 2")
}

func TestExportImport_RoundTrip(t *testing.T) {
	defer setupTestServices()()
	mustExecute("phone", "add", "bob", "+380501112233")
	mustExecute("contact", "birthday", "bob", "22.06.1990")
	mustExecute("note", "add", "first", "--tags", "a")
	mustExecute("note", "add", "second", "--tags", "a,b")
	mustExecute("note", "delete", "1")

	path := filepath.Join(t.TempDir(), "backup.yaml")
	out, err := executeCommand("export", path)
	require.NoError(t, err)
	assert.Equal(t, "Exported to "+path+"\n", out)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Start over with empty services and import the backup.
	setupTestServices()
	out, err = executeCommand("import", path)
	require.NoError(t, err)
	assert.Equal(t, "Imported "+path+"\n", out)

	contact, err := contactService.Get(context.Background(), "bob")
	require.NoError(t, err)
	require.NotNil(t, contact.Birthday)
	assert.Equal(t, "22.06.1990", contact.Birthday.String())

	notes, err := noteService.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, 2, notes[0].ID)
	assert.Equal(t, []string{"a", "b"}, notes[0].Tags)

	// IDs continue after the imported high-water mark.
	mustExecute("note", "add", "third")
	_, err = noteService.Get(context.Background(), 3)
	assert.NoError(t, err)
}

func TestImport_Stdin(t *testing.T) {
	defer setupTestServices()()

	doc := `version: 1
next_note_id: 1
contacts:
  - name: alice
    email: alice@example.com
notes: []
`
	_, err := executeCommandWithInput(doc, "import", "-")
	require.NoError(t, err)

	contact, err := contactService.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", contact.Name)
}

func TestImport_InvalidLeavesDataUntouched(t *testing.T) {
	defer setupTestServices()()
	mustExecute("contact", "add", "bob")

	_, err := executeCommandWithInput("version: 1\ncontacts: {oops\n", "import", "-")
	require.Error(t, err)

	_, err = contactService.Get(context.Background(), "bob")
	assert.NoError(t, err)
}

func TestImport_MissingFile(t *testing.T) {
	defer setupTestServices()()

	_, err := executeCommand("import", filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open import file")
}

func TestImport_RequiresArgument(t *testing.T) {
	defer setupTestServices()()

	_, err := executeCommand("import")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}
