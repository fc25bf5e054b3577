package services

import (
	"fmt"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBirthdayHorizon = "birthdays.horizon_days"
	keyLeapDayPolicy   = "birthdays.leap_day_policy"
	keyContactSort     = "contacts.sort"
	keyDisplayColor    = "display.color"
)

// MaxBirthdayHorizon bounds the configurable birthdays window.
const MaxBirthdayHorizon = 366

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Birthdays: domain.BirthdaySettings{
			HorizonDays:   s.getHorizon(defaults.Birthdays.HorizonDays),
			LeapDayPolicy: s.getLeapDayPolicy(defaults.Birthdays.LeapDayPolicy),
		},
		Contacts: domain.ContactSettings{
			Sort: s.getContactSort(defaults.Contacts.Sort),
		},
		Display: domain.DisplaySettings{
			Color: s.getBool(keyDisplayColor, defaults.Display.Color),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := s.configStore.Set(keyBirthdayHorizon, settings.Birthdays.HorizonDays); err != nil {
		return fmt.Errorf("save birthday horizon: %w", err)
	}
	if err := s.configStore.Set(keyLeapDayPolicy, settings.Birthdays.LeapDayPolicy.String()); err != nil {
		return fmt.Errorf("save leap day policy: %w", err)
	}
	if err := s.configStore.Set(keyContactSort, string(settings.Contacts.Sort)); err != nil {
		return fmt.Errorf("save contact sort: %w", err)
	}
	if err := s.configStore.Set(keyDisplayColor, settings.Display.Color); err != nil {
		return fmt.Errorf("save display color: %w", err)
	}
	return nil
}

// SetBirthdayHorizon updates the default birthdays window.
func (s *SettingsService) SetBirthdayHorizon(days int) error {
	if days < 1 || days > MaxBirthdayHorizon {
		return fmt.Errorf("%w: horizon must be between 1 and %d days, got %d",
			domain.ErrInvalidInput, MaxBirthdayHorizon, days)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Birthdays.HorizonDays = days
	return s.Save(settings)
}

// SetLeapDayPolicy updates where 29 February birthdays fall.
func (s *SettingsService) SetLeapDayPolicy(policy domain.LeapDayPolicy) error {
	if !policy.IsValid() {
		return fmt.Errorf("%w: invalid leap day policy: %s", domain.ErrInvalidInput, policy)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Birthdays.LeapDayPolicy = policy
	return s.Save(settings)
}

// SetContactSort updates the default contact listing order.
func (s *SettingsService) SetContactSort(field domain.ContactSortField) error {
	if !field.IsValid() {
		return fmt.Errorf("%w: invalid sort field: %s", domain.ErrInvalidInput, field)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Contacts.Sort = field
	return s.Save(settings)
}

// SetColor enables or disables styled output.
func (s *SettingsService) SetColor(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.Color = enabled
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return *domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getHorizon(defaultVal int) int {
	val := s.configStore.GetInt(keyBirthdayHorizon)
	if val < 1 || val > MaxBirthdayHorizon {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getLeapDayPolicy(defaultVal domain.LeapDayPolicy) domain.LeapDayPolicy {
	val := s.configStore.GetString(keyLeapDayPolicy)
	if val == "" {
		return defaultVal
	}
	policy := domain.LeapDayPolicy(val)
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}

func (s *SettingsService) getContactSort(defaultVal domain.ContactSortField) domain.ContactSortField {
	val := s.configStore.GetString(keyContactSort)
	if val == "" {
		return defaultVal
	}
	field := domain.ContactSortField(val)
	if !field.IsValid() {
		return defaultVal
	}
	return field
}
