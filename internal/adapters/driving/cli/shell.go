package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driving/shell"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive prompt",
	Long: `Start an interactive prompt that runs lotus commands.

Every command is available without the 'lotus' prefix, e.g.
  contact list birthday desc
  note add "Shopping" "milk, bread" --tags home

The classic assistant commands work too: add-phone, change, remove, all,
add-birthday, show-birthday, birthdays, add-email, add-address,
find-by-phone, find-by-email, add-note, edit-note, remove-note, all-notes,
hello, help, exit, quit and close.

Controls:
  Tab      - Complete the command
  ↑/↓      - Browse history
  Esc      - Clear the line
  Ctrl+D   - Quit`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// errNestedCommand is returned for commands the shell cannot run.
var errNestedCommand = errors.New("not available inside the shell")

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	historyPath := ""
	if dataDir != "" {
		historyPath = filepath.Join(dataDir, shell.HistoryFile)
	}
	history, err := shell.LoadHistory(historyPath, shell.DefaultHistoryLimit)
	if err != nil {
		logger.Warn("history unavailable: %v", err)
		history = nil
	}

	interactive = isTerminal(cmd.OutOrStdout())
	defer func() { interactive = false }()

	return shell.Run(cmd.Context(), shell.Config{
		Executor: &commandExecutor{root: cmd.Root()},
		Commands: commandPaths(cmd.Root()),
		History:  history,
		Styles:   outputStyles(cmd),
	})
}

// commandExecutor runs shell lines through the command tree.
type commandExecutor struct {
	root *cobra.Command
}

// Execute runs args as a lotus command line and returns what it printed.
func (e *commandExecutor) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		switch args[0] {
		case "shell", "mcp":
			return "", fmt.Errorf("%s: %w", args[0], errNestedCommand)
		}
	}

	keep := changedFlags(e.root)

	var buf bytes.Buffer
	e.root.SetOut(&buf)
	e.root.SetErr(&buf)
	e.root.SetArgs(args)
	silenced := e.root.SilenceErrors
	e.root.SilenceErrors = true
	restoreLog := logger.Redirect(&buf)

	defer func() {
		restoreLog()
		e.root.SetOut(nil)
		e.root.SetErr(nil)
		e.root.SetArgs(nil)
		e.root.SilenceErrors = silenced
		resetFlags(e.root, keep)
	}()

	err := e.root.ExecuteContext(ctx)
	return buf.String(), err
}

// visitFlags calls fn for every flag defined anywhere in the tree.
func visitFlags(cmd *cobra.Command, fn func(*pflag.Flag)) {
	cmd.Flags().VisitAll(fn)
	cmd.PersistentFlags().VisitAll(fn)
	for _, c := range cmd.Commands() {
		visitFlags(c, fn)
	}
}

// changedFlags records the flags already set before a shell line runs,
// such as --verbose given to 'lotus shell' itself.
func changedFlags(root *cobra.Command) map[*pflag.Flag]bool {
	changed := make(map[*pflag.Flag]bool)
	visitFlags(root, func(f *pflag.Flag) {
		if f.Changed {
			changed[f] = true
		}
	})
	return changed
}

// resetFlags restores flags set by a shell line to their defaults so they
// do not leak into the next line. Flags in keep are left alone.
func resetFlags(root *cobra.Command, keep map[*pflag.Flag]bool) {
	visitFlags(root, func(f *pflag.Flag) {
		if !f.Changed || keep[f] {
			return
		}
		if err := f.Value.Set(f.DefValue); err != nil {
			logger.Debug("resetting flag %s: %v", f.Name, err)
		}
		f.Changed = false
	})
}

// commandPaths lists the runnable command lines for completion,
// e.g. "contact add", plus the classic assistant commands.
func commandPaths(root *cobra.Command) []string {
	var paths []string
	var walk func(cmd *cobra.Command, prefix string)
	walk = func(cmd *cobra.Command, prefix string) {
		for _, c := range cmd.Commands() {
			if c.Hidden || c.Name() == "completion" || c.Name() == "shell" {
				continue
			}
			path := strings.TrimSpace(prefix + " " + c.Name())
			if c.Runnable() {
				paths = append(paths, path)
			}
			walk(c, path)
		}
	}
	walk(root, "")

	paths = append(paths, shell.AliasNames()...)
	paths = append(paths, "exit", "quit", "close", "hello", "help")
	sort.Strings(paths)
	return dedupe(paths)
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
