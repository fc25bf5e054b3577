package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

// Ensure ContactService implements the interface.
var _ driving.ContactService = (*ContactService)(nil)

// ContactService manages the address book.
type ContactService struct {
	state     *StateService
	validator driven.Validator
	settings  driving.SettingsService
	now       func() time.Time
}

// NewContactService creates a new contact service.
// validator and settings may be nil.
func NewContactService(
	state *StateService,
	validator driven.Validator,
	settings driving.SettingsService,
) *ContactService {
	return &ContactService{
		state:     state,
		validator: validator,
		settings:  settings,
		now:       time.Now,
	}
}

// SetClock overrides the source of "today" for birthday queries.
func (s *ContactService) SetClock(now func() time.Time) {
	s.now = now
}

// Add creates an empty contact, or returns the existing one.
func (s *ContactService) Add(ctx context.Context, name string) (*domain.Contact, error) {
	var out domain.Contact
	err := s.state.mutate(ctx, func() error {
		c, err := s.state.contacts.Add(name)
		if err != nil {
			return err
		}
		out = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Contact %q added", out.Name)
	return &out, nil
}

// Create adds an empty contact and refuses a name that is already taken.
func (s *ContactService) Create(ctx context.Context, name string) (*domain.Contact, error) {
	var out domain.Contact
	err := s.state.mutate(ctx, func() error {
		if _, err := s.state.contacts.Find(name); err == nil {
			return fmt.Errorf("contact %q: %w", domain.NormalizeName(name), domain.ErrAlreadyExists)
		}
		c, err := s.state.contacts.Add(name)
		if err != nil {
			return err
		}
		out = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Contact %q created", out.Name)
	return &out, nil
}

// Get retrieves a contact by name.
func (s *ContactService) Get(_ context.Context, name string) (*domain.Contact, error) {
	var out domain.Contact
	var err error
	s.state.read(func() {
		var c *domain.Contact
		if c, err = s.state.contacts.Find(name); err == nil {
			out = c.Clone()
		}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove deletes a contact.
func (s *ContactService) Remove(ctx context.Context, name string) error {
	err := s.state.mutate(ctx, func() error {
		return s.state.contacts.Remove(name)
	})
	if err != nil {
		return err
	}
	logger.Debug("Contact %q removed", domain.NormalizeName(name))
	return nil
}

// List returns all contacts in the requested order.
func (s *ContactService) List(_ context.Context, sort domain.ContactSort) ([]domain.Contact, error) {
	var contacts []domain.Contact
	s.state.read(func() {
		contacts = s.state.contacts.Snapshot()
	})
	domain.SortContacts(contacts, sort)
	return contacts, nil
}

// AddPhone validates the phone and attaches it, creating the contact if absent.
func (s *ContactService) AddPhone(ctx context.Context, name, phone, label string) error {
	phone = compactPhone(phone)
	if err := s.validatePhone(phone); err != nil {
		return err
	}

	err := s.state.mutate(ctx, func() error {
		c, err := s.state.contacts.Add(name)
		if err != nil {
			return err
		}
		return c.SetPhone(phone, label)
	})
	if err != nil {
		return err
	}
	logger.Debug("Phone %s added to %q", phone, domain.NormalizeName(name))
	return nil
}

// RemovePhone detaches a phone from a contact.
func (s *ContactService) RemovePhone(ctx context.Context, name, phone string) error {
	return s.state.mutate(ctx, func() error {
		c, err := s.state.contacts.Find(name)
		if err != nil {
			return err
		}
		return c.RemovePhone(compactPhone(phone))
	})
}

// ChangePhone replaces oldPhone with newPhone. newPhone is validated before
// the contact is touched, so a rejected number leaves oldPhone in place.
func (s *ContactService) ChangePhone(ctx context.Context, name, oldPhone, newPhone, label string) error {
	oldPhone = compactPhone(oldPhone)
	newPhone = compactPhone(newPhone)
	if err := s.validatePhone(newPhone); err != nil {
		return err
	}

	err := s.state.mutate(ctx, func() error {
		c, err := s.state.contacts.Find(name)
		if err != nil {
			return err
		}
		return c.RenamePhone(oldPhone, newPhone, label)
	})
	if err != nil {
		return err
	}
	logger.Debug("Phone %s changed to %s for %q", oldPhone, newPhone, domain.NormalizeName(name))
	return nil
}

// SetBirthday parses a DD.MM.YYYY date and stores it, creating the contact if absent.
func (s *ContactService) SetBirthday(ctx context.Context, name, birthday string) error {
	date, err := domain.ParseDate(birthday)
	if err != nil {
		return err
	}

	return s.state.mutate(ctx, func() error {
		c, err := s.state.contacts.Add(name)
		if err != nil {
			return err
		}
		c.SetBirthday(date)
		return nil
	})
}

// SetEmail validates and stores the email, creating the contact if absent.
func (s *ContactService) SetEmail(ctx context.Context, name, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is empty", domain.ErrInvalidInput)
	}
	if s.validator != nil {
		if err := s.validator.ValidateEmail(email); err != nil {
			return err
		}
	}

	return s.state.mutate(ctx, func() error {
		c, err := s.state.contacts.Add(name)
		if err != nil {
			return err
		}
		c.SetEmail(email)
		return nil
	})
}

// SetAddress stores the address, creating the contact if absent.
func (s *ContactService) SetAddress(ctx context.Context, name, address string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: address is empty", domain.ErrInvalidInput)
	}

	return s.state.mutate(ctx, func() error {
		c, err := s.state.contacts.Add(name)
		if err != nil {
			return err
		}
		c.SetAddress(address)
		return nil
	})
}

// FindByPhone returns the first contact holding the phone.
func (s *ContactService) FindByPhone(_ context.Context, phone string) (*domain.Contact, error) {
	return s.findBy(func() (*domain.Contact, error) {
		return s.state.contacts.FindByPhone(compactPhone(phone))
	})
}

// FindByEmail returns the first contact with the email.
func (s *ContactService) FindByEmail(_ context.Context, email string) (*domain.Contact, error) {
	return s.findBy(func() (*domain.Contact, error) {
		return s.state.contacts.FindByEmail(email)
	})
}

// UpcomingBirthdays lists contacts to congratulate within horizonDays.
func (s *ContactService) UpcomingBirthdays(_ context.Context, horizonDays int) ([]domain.Greeting, error) {
	if horizonDays < 0 {
		return nil, fmt.Errorf("%w: horizon must not be negative, got %d", domain.ErrInvalidInput, horizonDays)
	}

	policy := domain.DefaultLeapDayPolicy
	if s.settings != nil {
		settings, err := s.settings.Get()
		if err != nil {
			logger.Warn("Reading settings failed, using %s leap-day policy: %v", policy, err)
		} else {
			policy = settings.Birthdays.LeapDayPolicy
		}
	}

	var contacts []domain.Contact
	s.state.read(func() {
		contacts = s.state.contacts.Snapshot()
	})

	today := s.now()
	logger.Debug("Birthdays: horizon=%d today=%s policy=%s", horizonDays, domain.DateOf(today), policy)
	return domain.UpcomingBirthdays(contacts, horizonDays, today, policy), nil
}

func (s *ContactService) findBy(find func() (*domain.Contact, error)) (*domain.Contact, error) {
	var out domain.Contact
	var err error
	s.state.read(func() {
		var c *domain.Contact
		if c, err = find(); err == nil {
			out = c.Clone()
		}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// compactPhone drops all whitespace so "+38 050 111 22 33" and
// "+380501112233" name the same phone.
func compactPhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

func (s *ContactService) validatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: phone number is empty", domain.ErrInvalidInput)
	}
	if s.validator == nil {
		return nil
	}
	return s.validator.ValidatePhone(phone)
}
