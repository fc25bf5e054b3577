package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NotNil(t, s)
	assert.Equal(t, 7, s.Birthdays.HorizonDays)
	assert.Equal(t, LeapDayMarch1, s.Birthdays.LeapDayPolicy)
	assert.Equal(t, SortByName, s.Contacts.Sort)
	assert.True(t, s.Display.Color)
}

func TestLeapDayPolicy_IsValid(t *testing.T) {
	tests := []struct {
		policy   LeapDayPolicy
		expected bool
	}{
		{LeapDayMarch1, true},
		{LeapDayFeb28, true},
		{LeapDaySkip, true},
		{LeapDayPolicy(""), false},
		{LeapDayPolicy("march2"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.IsValid())
		})
	}
}

func TestLeapDayPolicy_Description(t *testing.T) {
	assert.Equal(t, "1 March in non-leap years", LeapDayMarch1.Description())
	assert.Equal(t, "Unknown", LeapDayPolicy("bogus").Description())
}
