package mcp

import (
	"context"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// mockContactService is a mock implementation of driving.ContactService.
type mockContactService struct {
	contact   *domain.Contact
	contacts  []domain.Contact
	greetings []domain.Greeting
	err       error

	lastSort    domain.ContactSort
	lastHorizon int
	lastPhone   string
	lastEmail   string
}

func (m *mockContactService) Add(_ context.Context, _ string) (*domain.Contact, error) {
	return m.contact, m.err
}

func (m *mockContactService) Create(_ context.Context, _ string) (*domain.Contact, error) {
	return m.contact, m.err
}

func (m *mockContactService) Get(_ context.Context, _ string) (*domain.Contact, error) {
	return m.contact, m.err
}

func (m *mockContactService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockContactService) List(_ context.Context, sort domain.ContactSort) ([]domain.Contact, error) {
	m.lastSort = sort
	return m.contacts, m.err
}

func (m *mockContactService) AddPhone(_ context.Context, _, _, _ string) error {
	return m.err
}

func (m *mockContactService) RemovePhone(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockContactService) ChangePhone(_ context.Context, _, _, _, _ string) error {
	return m.err
}

func (m *mockContactService) SetBirthday(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockContactService) SetEmail(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockContactService) SetAddress(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockContactService) FindByPhone(_ context.Context, phone string) (*domain.Contact, error) {
	m.lastPhone = phone
	return m.contact, m.err
}

func (m *mockContactService) FindByEmail(_ context.Context, email string) (*domain.Contact, error) {
	m.lastEmail = email
	return m.contact, m.err
}

func (m *mockContactService) UpcomingBirthdays(_ context.Context, horizonDays int) ([]domain.Greeting, error) {
	m.lastHorizon = horizonDays
	return m.greetings, m.err
}

// mockNoteService is a mock implementation of driving.NoteService.
type mockNoteService struct {
	note  *domain.Note
	notes []domain.Note
	tags  map[string][]int
	err   error

	lastTags string
}

func (m *mockNoteService) Add(_ context.Context, _, _, tags string) (*domain.Note, error) {
	m.lastTags = tags
	return m.note, m.err
}

func (m *mockNoteService) Get(_ context.Context, _ int) (*domain.Note, error) {
	return m.note, m.err
}

func (m *mockNoteService) List(_ context.Context) ([]domain.Note, error) {
	return m.notes, m.err
}

func (m *mockNoteService) Edit(_ context.Context, _ int, _, _, _ string) (*domain.Note, error) {
	return m.note, m.err
}

func (m *mockNoteService) Delete(_ context.Context, _ int) error {
	return m.err
}

func (m *mockNoteService) RemoveTag(_ context.Context, _ int, _ string) error {
	return m.err
}

func (m *mockNoteService) SearchByTags(_ context.Context, tags string) ([]domain.Note, error) {
	m.lastTags = tags
	return m.notes, m.err
}

func (m *mockNoteService) Tags(_ context.Context) (map[string][]int, error) {
	return m.tags, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.Settings) error {
	return m.err
}

func (m *mockSettingsService) SetBirthdayHorizon(_ int) error {
	return m.err
}

func (m *mockSettingsService) SetLeapDayPolicy(_ domain.LeapDayPolicy) error {
	return m.err
}

func (m *mockSettingsService) SetContactSort(_ domain.ContactSortField) error {
	return m.err
}

func (m *mockSettingsService) SetColor(_ bool) error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return *domain.DefaultSettings()
}
