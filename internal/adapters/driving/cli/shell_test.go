package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driving/shell"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

func TestCommandExecutor_RunsCommand(t *testing.T) {
	defer setupTestServices()()
	exec := &commandExecutor{root: rootCmd}

	out, err := exec.Execute(context.Background(), []string{"contact", "add", "bob"})

	require.NoError(t, err)
	assert.Equal(t, "Contact bob added\n", out)
}

func TestCommandExecutor_ReturnsErrorsWithoutPrinting(t *testing.T) {
	defer setupTestServices()()
	exec := &commandExecutor{root: rootCmd}

	out, err := exec.Execute(context.Background(), []string{"contact", "show", "ghost"})

	require.Error(t, err)
	assert.NotContains(t, out, "Error:")
	assert.False(t, rootCmd.SilenceErrors)
}

func TestCommandExecutor_RejectsNestedCommands(t *testing.T) {
	defer setupTestServices()()
	exec := &commandExecutor{root: rootCmd}

	for _, name := range []string{"shell", "mcp"} {
		_, err := exec.Execute(context.Background(), []string{name})
		assert.ErrorIs(t, err, errNestedCommand, name)
	}
}

func TestCommandExecutor_ResetsFlagsBetweenLines(t *testing.T) {
	defer setupTestServices()()
	exec := &commandExecutor{root: rootCmd}

	_, err := exec.Execute(context.Background(), []string{"note", "add", "first", "--tags", "work"})
	require.NoError(t, err)
	_, err = exec.Execute(context.Background(), []string{"note", "add", "second"})
	require.NoError(t, err)

	note, err := noteService.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, note.Tags)
}

func TestCommandExecutor_KeepsOuterFlags(t *testing.T) {
	defer setupTestServices()()
	defer logger.SetVerbose(false)
	defer resetFlags(rootCmd, nil)
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "true"))
	exec := &commandExecutor{root: rootCmd}

	_, err := exec.Execute(context.Background(), []string{"note", "list"})
	require.NoError(t, err)

	assert.True(t, verbose)
	assert.True(t, rootCmd.PersistentFlags().Lookup("verbose").Changed)
}

func TestCommandExecutor_ExpandedAliases(t *testing.T) {
	defer setupTestServices()()
	exec := &commandExecutor{root: rootCmd}

	_, err := exec.Execute(context.Background(), shell.Expand([]string{"add-phone", "bob", "+380501112233"}))
	require.NoError(t, err)

	out, err := exec.Execute(context.Background(), shell.Expand([]string{"all"}))
	require.NoError(t, err)
	assert.Contains(t, out, "+380501112233")
}

func TestCommandPaths(t *testing.T) {
	paths := commandPaths(rootCmd)

	for _, want := range []string{
		"contact add", "contact list", "phone", "phone add", "birthdays",
		"note search", "settings set", "export", "mcp serve",
		"add-phone", "all-notes", "exit", "hello",
	} {
		assert.Contains(t, paths, want)
	}
	assert.NotContains(t, paths, "shell")
	assert.NotContains(t, paths, "contact")
	assert.IsNonDecreasing(t, paths)

	seen := make(map[string]bool)
	for _, p := range paths {
		assert.False(t, seen[p], "duplicate %q", p)
		seen[p] = true
	}
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupe([]string{"a", "a", "b", "c", "c"}))
	assert.Empty(t, dedupe(nil))
}

func TestCommandExecutor_CapturesLogLines(t *testing.T) {
	defer setupTestServices()()
	defer logger.SetVerbose(false)
	defer resetFlags(rootCmd, nil)
	exec := &commandExecutor{root: rootCmd}

	out, err := exec.Execute(context.Background(), []string{"contact", "add", "bob", "--verbose"})

	require.NoError(t, err)
	assert.Contains(t, out, `[DEBUG] Contact "bob" added`)
	assert.Contains(t, out, "Contact bob added")
}
