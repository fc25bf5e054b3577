package cli

import (
	"bytes"
	"strings"
	"time"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/storage/yamlfile"
	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/validation"
	"github.com/custodia-labs/lotus-cli/internal/core/services"
)

// testToday is Thursday 20 June 2024.
var testToday = time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC)

// setupTestServices installs in-memory services and returns a cleanup
// function that removes them.
func setupTestServices() func() {
	state := services.NewStateService(
		memory.NewContactStore(),
		memory.NewNoteStore(memory.WithClock(func() time.Time { return testToday })),
		nil,
		yamlfile.NewCodec(true),
	)
	settings := services.NewSettingsService(memory.NewConfigStore())
	contacts := services.NewContactService(state, validation.NewValidator(), settings)
	contacts.SetClock(func() time.Time { return testToday })

	SetServices(&Services{
		Contacts: contacts,
		Notes:    services.NewNoteService(state),
		Settings: settings,
		State:    state,
	})

	return func() {
		SetServices(nil)
	}
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	return executeCommandWithInput("", args...)
}

func executeCommandWithInput(input string, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd, nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// mustExecute runs a setup command that is expected to succeed.
func mustExecute(args ...string) {
	if _, err := executeCommand(args...); err != nil {
		panic("setup command " + strings.Join(args, " ") + ": " + err.Error())
	}
}
