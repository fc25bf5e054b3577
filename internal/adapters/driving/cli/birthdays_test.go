package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// Birthdays relative to Thursday 20 June 2024.
func seedBirthdays() {
	mustExecute("contact", "birthday", "sat", "22.06.1990") // Saturday, congratulated Monday
	mustExecute("contact", "birthday", "today", "20.06.1985")
	mustExecute("contact", "birthday", "later", "01.07.2000")
	mustExecute("contact", "birthday", "past", "19.06.1970")
	mustExecute("contact", "add", "nobirthday")
}

func TestBirthdays_DefaultHorizon(t *testing.T) {
	defer setupTestServices()()
	seedBirthdays()

	out, err := executeCommand("birthdays")

	require.NoError(t, err)
	assertOrder(t, out, "today", "sat")
	assert.Contains(t, out, "24.06.2024")
	assert.Contains(t, out, "Monday")
	assert.NotContains(t, out, "later")
	assert.NotContains(t, out, "past")
	assert.NotContains(t, out, "nobirthday")
}

func TestBirthdays_ExplicitDays(t *testing.T) {
	defer setupTestServices()()
	seedBirthdays()

	out, err := executeCommand("birthdays", "14")

	require.NoError(t, err)
	assertOrder(t, out, "today", "sat", "later")
	assert.NotContains(t, out, "past")
}

func TestBirthdays_HorizonSetting(t *testing.T) {
	defer setupTestServices()()
	seedBirthdays()
	require.NoError(t, settingsService.SetBirthdayHorizon(1))

	out, err := executeCommand("birthdays")

	require.NoError(t, err)
	assert.Contains(t, out, "today")
	assert.NotContains(t, out, "sat")
}

func TestBirthdays_Empty(t *testing.T) {
	defer setupTestServices()()

	out, err := executeCommand("birthdays", "30")

	require.NoError(t, err)
	assert.Equal(t, "Empty list\n", out)
}

func TestBirthdays_ZeroDays(t *testing.T) {
	defer setupTestServices()()
	seedBirthdays()

	out, err := executeCommand("birthdays", "0")

	require.NoError(t, err)
	assert.Equal(t, "Empty list\n", out)
}

func TestBirthdays_InvalidDays(t *testing.T) {
	defer setupTestServices()()

	_, err := executeCommand("birthdays", "soon")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCommand("birthdays", "--", "-3")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
