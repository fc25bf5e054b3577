package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
	}

	return store, cleanup
}

func TestNewStore_ErrorHandling(t *testing.T) {
	// Test with invalid path (should fail to create directory)
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, DatabaseFile)
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	// Verify database connection is working
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".lotus", "data", DatabaseFile), store.Path())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	assert.DirExists(t, nestedDir)
	info, err := os.Stat(nestedDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewStore_Migrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	tables := []string{
		"schema_migrations",
		"contacts",
		"contact_phones",
		"notes",
		"note_tags",
		"note_sequence",
	}

	for _, table := range tables {
		var tableExists int
		err := store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&tableExists)
		require.NoError(t, err)
		assert.Equal(t, 1, tableExists, "table %s should exist", table)
	}

	var nextID int
	require.NoError(t, store.db.QueryRow("SELECT next_id FROM note_sequence WHERE id = 1").Scan(&nextID))
	assert.Equal(t, 1, nextID)
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var fkEnabled int
	err := store.db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled)
	require.NoError(t, err)
	assert.Equal(t, 1, fkEnabled, "foreign keys should be enabled")
}

func TestStore_Close(t *testing.T) {
	store, _ := setupTestStore(t)

	assert.NoError(t, store.Close())

	// Verify connection is closed
	assert.Error(t, store.db.Ping())
}

func TestStore_SnapshotStoreGetter(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.NotNil(t, store.SnapshotStore())
}

func TestStore_MigrationIdempotency(t *testing.T) {
	tempDir := t.TempDir()

	store1, err := NewStore(tempDir)
	require.NoError(t, err)

	var count1 int
	require.NoError(t, store1.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count1))
	require.NoError(t, store1.Close())

	// Reopening must not run migrations again
	store2, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store2.Close()

	var count2 int
	require.NoError(t, store2.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count2))
	assert.Equal(t, count1, count2)
}

func TestStore_MigrateRecordsMigrationVersion(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	rows, err := store.db.Query("SELECT version FROM schema_migrations ORDER BY version")
	require.NoError(t, err)
	defer rows.Close()

	versions := []int{}
	for rows.Next() {
		var version int
		require.NoError(t, rows.Scan(&version))
		versions = append(versions, version)
	}
	require.NoError(t, rows.Err())

	require.NotEmpty(t, versions)
	assert.Equal(t, 1, versions[0])
}

func TestStore_WALMode(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var journalMode string
	err := store.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode)
	require.NoError(t, err)
	assert.Equal(t, "wal", journalMode)
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	v := nullString("x")
	assert.True(t, v.Valid)
	assert.Equal(t, "x", v.String)
}
