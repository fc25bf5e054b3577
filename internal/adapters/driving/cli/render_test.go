package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

func newRenderCmd() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd, buf
}

func TestOutputStyles_PlainForBuffers(t *testing.T) {
	defer setupTestServices()()
	cmd, _ := newRenderCmd()

	assert.True(t, outputStyles(cmd).Plain())
}

func TestOutputStyles_InteractiveShell(t *testing.T) {
	defer setupTestServices()()
	cmd, _ := newRenderCmd()

	interactive = true
	defer func() { interactive = false }()
	assert.False(t, outputStyles(cmd).Plain())

	require.NoError(t, settingsService.SetColor(false))
	assert.True(t, outputStyles(cmd).Plain())
}

func TestRenderContacts(t *testing.T) {
	cmd, buf := newRenderCmd()
	birthday := domain.Date{Year: 1990, Month: time.June, Day: 22}
	contacts := []domain.Contact{{
		Name:     "bob",
		Phones:   map[string]string{"+380501112233": "work", "+380671234567": ""},
		Birthday: &birthday,
		Email:    "bob@example.com",
		Address:  "Kyiv",
	}}

	renderContacts(cmd, contacts)

	out := buf.String()
	for _, want := range []string{"Name", "Birthday", "bob", "22.06.1990", "+380501112233 (work)", "+380671234567", "bob@example.com", "Kyiv"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderGreetings(t *testing.T) {
	cmd, buf := newRenderCmd()
	occurrence := domain.Date{Year: 2024, Month: time.June, Day: 22}

	renderGreetings(cmd, []domain.Greeting{{
		Name:               "bob",
		Birthday:           domain.Date{Year: 1990, Month: time.June, Day: 22},
		Occurrence:         occurrence,
		CongratulationDate: domain.CongratulationDate(occurrence),
	}})

	out := buf.String()
	assert.Contains(t, out, "22.06.2024")
	assert.Contains(t, out, "24.06.2024")
	assert.Contains(t, out, "Monday")
}

func TestPhonesString(t *testing.T) {
	c := &domain.Contact{Phones: map[string]string{"+380671234567": "", "+380501112233": "home"}}

	assert.Equal(t, "+380501112233 (home); +380671234567", phonesString(c, "; "))
	assert.Empty(t, phonesString(&domain.Contact{}, ", "))
}

func TestBirthdayString(t *testing.T) {
	assert.Empty(t, birthdayString(&domain.Contact{}))

	d := domain.Date{Year: 2000, Month: time.February, Day: 29}
	assert.Equal(t, "29.02.2000", birthdayString(&domain.Contact{Birthday: &d}))
}

func TestOrNotSet(t *testing.T) {
	assert.Equal(t, "(not set)", orNotSet(""))
	assert.Equal(t, "x", orNotSet("x"))
}
