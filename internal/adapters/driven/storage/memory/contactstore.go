package memory

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
)

// Ensure ContactStore implements the interface.
var _ driven.ContactStore = (*ContactStore)(nil)

// ContactStore is an in-memory implementation of driven.ContactStore.
// Contacts are kept in insertion order so that scans and listings are
// deterministic.
//
// ContactStore is not safe for concurrent use.
type ContactStore struct {
	contacts map[string]*domain.Contact
	order    []string
}

// NewContactStore creates a new in-memory contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make(map[string]*domain.Contact),
	}
}

// Add creates the contact if absent and returns the stored record.
func (s *ContactStore) Add(name string) (*domain.Contact, error) {
	key := domain.NormalizeName(name)
	if key == "" {
		return nil, fmt.Errorf("%w: contact name is empty", domain.ErrInvalidInput)
	}
	if c, ok := s.contacts[key]; ok {
		return c, nil
	}
	c := domain.NewContact(key)
	s.contacts[key] = c
	s.order = append(s.order, key)
	return c, nil
}

// Find returns the stored contact.
func (s *ContactStore) Find(name string) (*domain.Contact, error) {
	key := domain.NormalizeName(name)
	c, ok := s.contacts[key]
	if !ok {
		return nil, fmt.Errorf("contact %q: %w", key, domain.ErrNotFound)
	}
	return c, nil
}

// Remove deletes the contact.
func (s *ContactStore) Remove(name string) error {
	key := domain.NormalizeName(name)
	if _, ok := s.contacts[key]; !ok {
		return fmt.Errorf("contact %q: %w", key, domain.ErrNotFound)
	}
	delete(s.contacts, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindByPhone returns the first contact holding the exact phone.
func (s *ContactStore) FindByPhone(phone string) (*domain.Contact, error) {
	phone = strings.TrimSpace(phone)
	for _, key := range s.order {
		if c := s.contacts[key]; c.HasPhone(phone) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("contact with phone %q: %w", phone, domain.ErrNotFound)
}

// FindByEmail returns the first contact with the exact email.
func (s *ContactStore) FindByEmail(email string) (*domain.Contact, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("contact with empty email: %w", domain.ErrNotFound)
	}
	for _, key := range s.order {
		if c := s.contacts[key]; c.Email == email {
			return c, nil
		}
	}
	return nil, fmt.Errorf("contact with email %q: %w", email, domain.ErrNotFound)
}

// List returns the stored contacts in insertion order.
func (s *ContactStore) List() []*domain.Contact {
	result := make([]*domain.Contact, 0, len(s.order))
	for _, key := range s.order {
		result = append(result, s.contacts[key])
	}
	return result
}

// Len returns the number of contacts.
func (s *ContactStore) Len() int {
	return len(s.contacts)
}

// Snapshot returns deep copies of all contacts in insertion order.
func (s *ContactStore) Snapshot() []domain.Contact {
	result := make([]domain.Contact, 0, len(s.order))
	for _, key := range s.order {
		result = append(result, s.contacts[key].Clone())
	}
	return result
}

// Restore replaces the store contents. Names are re-normalised and a
// later duplicate replaces an earlier one in place.
func (s *ContactStore) Restore(contacts []domain.Contact) {
	s.contacts = make(map[string]*domain.Contact, len(contacts))
	s.order = s.order[:0]
	for i := range contacts {
		c := contacts[i].Clone()
		c.Name = domain.NormalizeName(c.Name)
		if c.Name == "" {
			continue
		}
		if _, ok := s.contacts[c.Name]; !ok {
			s.order = append(s.order, c.Name)
		}
		s.contacts[c.Name] = &c
	}
}
