package driving

import "github.com/custodia-labs/lotus-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// SetBirthdayHorizon updates the default birthdays window.
	SetBirthdayHorizon(days int) error

	// SetLeapDayPolicy updates where 29 February birthdays fall.
	SetLeapDayPolicy(policy domain.LeapDayPolicy) error

	// SetContactSort updates the default contact listing order.
	SetContactSort(field domain.ContactSortField) error

	// SetColor enables or disables styled output.
	SetColor(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
