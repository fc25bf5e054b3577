// Package shell provides the interactive lotus prompt.
// It reads command lines, expands the classic assistant commands and hands
// the words to an Executor, which runs them against the command tree.
package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driving/styles"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

// PromptText is the prompt shown before each line.
const PromptText = "Enter a command: "

// Greeting is printed when the shell starts.
const Greeting = "Welcome to the assistant bot!"

// ErrMissingExecutor is returned when no executor is configured.
var ErrMissingExecutor = errors.New("shell: executor is required")

// Executor runs one parsed command line and returns its output.
type Executor interface {
	Execute(ctx context.Context, args []string) (string, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, args []string) (string, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, args []string) (string, error) {
	return f(ctx, args)
}

// Config holds the shell dependencies.
type Config struct {
	// Executor runs command lines.
	Executor Executor

	// Commands are the completion candidates, e.g. "contact add".
	Commands []string

	// History records submitted lines. Nil keeps an in-memory history.
	History *History

	// Styles renders the prompt and messages. Nil uses DefaultStyles.
	Styles *styles.Styles
}

// resultMsg carries the outcome of one executed line.
type resultMsg struct {
	output string
	err    error
	quit   bool
}

// Model is the shell state following the Elm architecture.
type Model struct {
	ctx      context.Context
	exec     Executor
	commands []string
	history  *History
	styles   *styles.Styles
	keys     *KeyMap
	input    textinput.Model

	// hint lists completion candidates after an ambiguous tab.
	hint     string
	busy     bool
	quitting bool
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New creates a shell model.
func New(ctx context.Context, cfg Config) (*Model, error) {
	if cfg.Executor == nil {
		return nil, ErrMissingExecutor
	}
	if cfg.Styles == nil {
		cfg.Styles = styles.DefaultStyles()
	}
	if cfg.History == nil {
		cfg.History, _ = LoadHistory("", 0) //nolint:errcheck // in-memory history cannot fail
	}

	ti := textinput.New()
	ti.Prompt = cfg.Styles.Prompt.Render(PromptText)
	ti.CharLimit = 1024
	ti.Focus()

	return &Model{
		ctx:      ctx,
		exec:     cfg.Executor,
		commands: cfg.Commands,
		history:  cfg.History,
		styles:   cfg.Styles,
		keys:     DefaultKeyMap(),
		input:    ti,
	}, nil
}

// Run starts the shell on the terminal and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) error {
	m, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(m.styles.Title.Render(Greeting)),
		tea.Println(m.styles.Help.Render("Type help for commands. Press Tab for auto-completion.")),
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(PromptText)-1, 10)
		return m, nil

	case resultMsg:
		m.busy = false
		var cmds []tea.Cmd
		if out := strings.TrimRight(msg.output, "\n"); out != "" {
			cmds = append(cmds, tea.Println(out))
		}
		if msg.err != nil {
			cmds = append(cmds, tea.Println(m.styles.Error.Render("Error: "+msg.err.Error())))
		}
		if msg.quit {
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		}
		return m, tea.Sequence(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		if m.busy {
			return m, nil
		}
		line := m.input.Value()
		m.input.Reset()
		m.hint = ""
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		if err := m.history.Add(line); err != nil {
			logger.Warn("shell history: %v", err)
		}
		m.busy = true
		echo := tea.Println(m.styles.Prompt.Render(PromptText) + line)
		return m, tea.Sequence(echo, func() tea.Msg { return m.execute(line) })

	case key.Matches(msg, m.keys.Complete):
		m.complete()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if line, ok := m.history.Prev(m.input.Value()); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if line, ok := m.history.Next(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		m.hint = ""
		return m, nil
	}

	m.hint = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one line and reports the outcome.
func (m *Model) execute(line string) resultMsg {
	args, err := Split(line)
	if err != nil {
		return resultMsg{err: err}
	}
	if len(args) == 0 {
		return resultMsg{}
	}

	switch strings.ToLower(args[0]) {
	case "exit", "quit", "close":
		return resultMsg{output: "Good bye!", quit: true}
	case "hello":
		return resultMsg{output: "How can I help you?"}
	}

	out, err := m.exec.Execute(m.ctx, Expand(args))
	return resultMsg{output: out, err: err}
}

// complete expands the line to the longest unambiguous command prefix.
func (m *Model) complete() {
	matches, prefix := Complete(m.input.Value(), m.commands)
	switch len(matches) {
	case 0:
		m.hint = ""
		return
	case 1:
		m.input.SetValue(matches[0] + " ")
		m.hint = ""
	default:
		if len(prefix) > len(m.input.Value()) {
			m.input.SetValue(prefix)
		}
		m.hint = strings.Join(matches, "  ")
	}
	m.input.CursorEnd()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.hint != "" {
		b.WriteString(m.styles.Muted.Render(m.hint))
		b.WriteString("\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m *Model) helpView() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}

// Value returns the current input line.
func (m *Model) Value() string {
	return m.input.Value()
}

// Hint returns the pending completion candidates.
func (m *Model) Hint() string {
	return m.hint
}

// Quitting reports whether the shell is shutting down.
func (m *Model) Quitting() bool {
	return m.quitting
}
