// Package cli provides the cobra command tree for lotus.
// It is a driving adapter: commands translate arguments into calls on the
// driving ports and render the results.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lotus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

// version is set by SetVersion from the build.
var version = "dev"

// Driving ports used by the commands. They are set by SetServices or by the
// bootstrap function on first use.
var (
	contactService  driving.ContactService
	noteService     driving.NoteService
	settingsService driving.SettingsService
	stateService    driving.StateService

	// dataDir is where persistent state lives; empty when ephemeral.
	dataDir string

	// stateWatcher reloads state when another process changes it.
	stateWatcher Runner
)

// Global flags.
var (
	verbose      bool
	configDirArg string
	dataDirArg   string
	ephemeral    bool
)

var (
	errContactServiceMissing  = errors.New("contact service not configured")
	errNoteServiceMissing     = errors.New("note service not configured")
	errSettingsServiceMissing = errors.New("settings service not configured")
	errStateServiceMissing    = errors.New("state service not configured")
)

// Options carries the global flags to the bootstrap function.
type Options struct {
	ConfigDir string
	DataDir   string
	Ephemeral bool
}

// Runner is a long-running background task.
type Runner interface {
	Run(ctx context.Context) error
}

// Services bundles the driving ports the commands use.
type Services struct {
	Contacts driving.ContactService
	Notes    driving.NoteService
	Settings driving.SettingsService
	State    driving.StateService

	// DataDir is where persistent state lives; empty when ephemeral.
	DataDir string

	// Watcher reloads State after outside changes. Nil when ephemeral.
	Watcher Runner
}

// BootstrapFunc builds the services from the global flags.
// The returned cleanup releases whatever the services opened.
type BootstrapFunc func(ctx context.Context, opts Options) (*Services, func(), error)

var (
	bootstrap BootstrapFunc
	cleanup   func()
)

var rootCmd = &cobra.Command{
	Use:   "lotus",
	Short: "Personal address book and notes",
	Long: `lotus keeps an address book and a tagged notebook on your machine.

Contacts carry phones, a birthday, an email and an address. Notes carry a
title, text and tags. Everything is stored under ~/.lotus unless
--data-dir or LOTUS_HOME says otherwise.

Run 'lotus shell' for an interactive prompt.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirArg, "config-dir", "", "Directory holding config.toml (default ~/.lotus)")
	rootCmd.PersistentFlags().StringVar(&dataDirArg, "data-dir", "", "Directory holding the database (default ~/.lotus/data)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep contacts, notes and settings in memory only")
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs the driving ports directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	contactService = s.Contacts
	noteService = s.Notes
	settingsService = s.Settings
	stateService = s.State
	dataDir = s.DataDir
	stateWatcher = s.Watcher
}

// SetVersion sets the version printed by 'lotus version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and releases the services afterwards.
func Execute(ctx context.Context) error {
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func preRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if !needsServices(cmd) || contactService != nil || bootstrap == nil {
		return nil
	}

	logger.Section("Bootstrap")
	svc, done, err := bootstrap(cmd.Context(), Options{
		ConfigDir: configDirArg,
		DataDir:   dataDirArg,
		Ephemeral: ephemeral,
	})
	if err != nil {
		return fmt.Errorf("starting lotus: %w", err)
	}
	SetServices(svc)
	cleanup = done
	return nil
}

// needsServices reports whether cmd touches contacts, notes or settings.
func needsServices(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return cmd.Parent() == nil || cmd.Parent().Name() != "completion"
}
