package driven

import "github.com/custodia-labs/lotus-cli/internal/core/domain"

// ContactStore holds contact records keyed by normalised name.
// Returned pointers reference the stored records; mutating them mutates
// the store.
type ContactStore interface {
	// Add creates the contact if absent and returns the stored record.
	Add(name string) (*domain.Contact, error)

	// Find returns the contact or domain.ErrNotFound.
	Find(name string) (*domain.Contact, error)

	// Remove deletes the contact or returns domain.ErrNotFound.
	Remove(name string) error

	// FindByPhone returns the first contact, in store order, holding the phone.
	FindByPhone(phone string) (*domain.Contact, error)

	// FindByEmail returns the first contact, in store order, with the email.
	FindByEmail(email string) (*domain.Contact, error)

	// List returns all contacts in store order.
	List() []*domain.Contact

	// Len returns the number of contacts.
	Len() int

	// Snapshot returns deep copies of all contacts in store order.
	Snapshot() []domain.Contact

	// Restore replaces the store contents.
	Restore(contacts []domain.Contact)
}
