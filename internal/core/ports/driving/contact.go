package driving

import (
	"context"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// ContactService manages the address book.
// Returned contacts are copies; use the service methods to change them.
type ContactService interface {
	// Add creates an empty contact, or returns the existing one.
	Add(ctx context.Context, name string) (*domain.Contact, error)

	// Create adds an empty contact; ErrAlreadyExists if the name is taken.
	Create(ctx context.Context, name string) (*domain.Contact, error)

	// Get retrieves a contact by name.
	Get(ctx context.Context, name string) (*domain.Contact, error)

	// Remove deletes a contact.
	Remove(ctx context.Context, name string) error

	// List returns all contacts in the requested order.
	List(ctx context.Context, sort domain.ContactSort) ([]domain.Contact, error)

	// AddPhone validates the phone and attaches it, creating the contact if absent.
	AddPhone(ctx context.Context, name, phone, label string) error

	// RemovePhone detaches a phone from a contact.
	RemovePhone(ctx context.Context, name, phone string) error

	// ChangePhone atomically replaces oldPhone with newPhone.
	ChangePhone(ctx context.Context, name, oldPhone, newPhone, label string) error

	// SetBirthday parses a DD.MM.YYYY date and stores it, creating the contact if absent.
	SetBirthday(ctx context.Context, name, birthday string) error

	// SetEmail validates and stores the email, creating the contact if absent.
	SetEmail(ctx context.Context, name, email string) error

	// SetAddress stores the address, creating the contact if absent.
	SetAddress(ctx context.Context, name, address string) error

	// FindByPhone returns the first contact holding the phone.
	FindByPhone(ctx context.Context, phone string) (*domain.Contact, error)

	// FindByEmail returns the first contact with the email.
	FindByEmail(ctx context.Context, email string) (*domain.Contact, error)

	// UpcomingBirthdays lists contacts to congratulate within horizonDays.
	// A zero horizon yields no greetings; a negative one is invalid.
	UpcomingBirthdays(ctx context.Context, horizonDays int) ([]domain.Greeting, error)
}
