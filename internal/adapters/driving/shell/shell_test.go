package shell

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driving/styles"
)

type recordingExecutor struct {
	calls  [][]string
	output string
	err    error
}

func (r *recordingExecutor) Execute(_ context.Context, args []string) (string, error) {
	r.calls = append(r.calls, args)
	return r.output, r.err
}

func newTestModel(t *testing.T, exec Executor) *Model {
	t.Helper()
	m, err := New(context.Background(), Config{
		Executor: exec,
		Commands: testCommands,
		Styles:   styles.PlainStyles(),
	})
	require.NoError(t, err)
	return m
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestNew_RequiresExecutor(t *testing.T) {
	m, err := New(context.Background(), Config{})

	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrMissingExecutor)
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t, &recordingExecutor{})

	assert.NotNil(t, m.Init())
}

func TestModel_Execute(t *testing.T) {
	t.Run("expands classic commands", func(t *testing.T) {
		exec := &recordingExecutor{output: "ok\n"}
		m := newTestModel(t, exec)

		res := m.execute(`add-phone "Anna Maria" +380501112233`)

		require.NoError(t, res.err)
		assert.Equal(t, "ok\n", res.output)
		assert.False(t, res.quit)
		assert.Equal(t, [][]string{{"phone", "add", "Anna Maria", "+380501112233"}}, exec.calls)
	})

	t.Run("exit words quit", func(t *testing.T) {
		for _, word := range []string{"exit", "quit", "CLOSE"} {
			exec := &recordingExecutor{}
			m := newTestModel(t, exec)

			res := m.execute(word)

			assert.True(t, res.quit, word)
			assert.Equal(t, "Good bye!", res.output)
			assert.Empty(t, exec.calls)
		}
	})

	t.Run("hello greets", func(t *testing.T) {
		exec := &recordingExecutor{}
		m := newTestModel(t, exec)

		res := m.execute("hello")

		assert.Equal(t, "How can I help you?", res.output)
		assert.Empty(t, exec.calls)
	})

	t.Run("reports split errors", func(t *testing.T) {
		exec := &recordingExecutor{}
		m := newTestModel(t, exec)

		res := m.execute(`note add "open`)

		assert.ErrorIs(t, res.err, ErrUnterminatedQuote)
		assert.Empty(t, exec.calls)
	})

	t.Run("reports executor errors", func(t *testing.T) {
		exec := &recordingExecutor{err: errors.New("contact not found")}
		m := newTestModel(t, exec)

		res := m.execute("contact show bob")

		assert.EqualError(t, res.err, "contact not found")
	})
}

func TestModel_Submit(t *testing.T) {
	exec := &recordingExecutor{}
	m := newTestModel(t, exec)
	typeText(m, "note list")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.Value())
	assert.Equal(t, []string{"note list"}, m.history.Entries())
	assert.True(t, m.busy)

	// A second enter while busy is ignored.
	typeText(m, "note tags")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "note tags", m.Value())

	m.Update(resultMsg{output: "done"})
	assert.False(t, m.busy)
}

func TestModel_SubmitBlankLine(t *testing.T) {
	m := newTestModel(t, &recordingExecutor{})
	typeText(m, "   ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, m.history.Entries())
}

func TestModel_ResultQuit(t *testing.T) {
	m := newTestModel(t, &recordingExecutor{})

	_, cmd := m.Update(resultMsg{output: "Good bye!", quit: true})

	assert.NotNil(t, cmd)
	assert.True(t, m.Quitting())
	assert.Equal(t, "", m.View())
}

func TestModel_Complete(t *testing.T) {
	t.Run("unique match", func(t *testing.T) {
		m := newTestModel(t, &recordingExecutor{})
		typeText(m, "bir")

		m.Update(tea.KeyMsg{Type: tea.KeyTab})

		assert.Equal(t, "birthdays ", m.Value())
		assert.Empty(t, m.Hint())
	})

	t.Run("ambiguous match shows candidates", func(t *testing.T) {
		m := newTestModel(t, &recordingExecutor{})
		typeText(m, "contact ad")

		m.Update(tea.KeyMsg{Type: tea.KeyTab})

		assert.Equal(t, "contact add", m.Value())
		assert.Equal(t, "contact add  contact address", m.Hint())
		assert.Contains(t, m.View(), "contact address")
	})

	t.Run("typing clears the hint", func(t *testing.T) {
		m := newTestModel(t, &recordingExecutor{})
		typeText(m, "note ")
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		require.NotEmpty(t, m.Hint())

		typeText(m, "l")

		assert.Empty(t, m.Hint())
	})
}

func TestModel_HistoryKeys(t *testing.T) {
	h, err := LoadHistory("", 0)
	require.NoError(t, err)
	require.NoError(t, h.Add("contact list"))
	require.NoError(t, h.Add("note tags"))

	m, err := New(context.Background(), Config{
		Executor: &recordingExecutor{},
		History:  h,
		Styles:   styles.PlainStyles(),
	})
	require.NoError(t, err)
	typeText(m, "dra")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "note tags", m.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "contact list", m.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "dra", m.Value())
}

func TestModel_ClearAndQuit(t *testing.T) {
	m := newTestModel(t, &recordingExecutor{})
	typeText(m, "something")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.Value())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.NotNil(t, cmd)
	assert.True(t, m.Quitting())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, &recordingExecutor{})

	view := m.View()

	assert.Contains(t, view, PromptText)
	assert.Contains(t, view, "tab complete")
	assert.Contains(t, view, "ctrl+d quit")
}

func TestExecutorFunc(t *testing.T) {
	var got []string
	f := ExecutorFunc(func(_ context.Context, args []string) (string, error) {
		got = args
		return "out", nil
	})

	out, err := f.Execute(context.Background(), []string{"a"})

	require.NoError(t, err)
	assert.Equal(t, "out", out)
	assert.Equal(t, []string{"a"}, got)
}
