package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ContactSortField names the column a contact listing is ordered by.
type ContactSortField string

// Available sort fields.
const (
	// SortByName orders by the normalised name.
	SortByName ContactSortField = "name"

	// SortByBirthday orders by birth date; contacts without one come last in ascending order.
	SortByBirthday ContactSortField = "birthday"

	// SortByEmail orders by email address.
	SortByEmail ContactSortField = "email"

	// SortByAddress orders by postal address.
	SortByAddress ContactSortField = "address"

	// SortByPhones orders by the smallest phone number.
	SortByPhones ContactSortField = "phones"

	// SortByInsertion keeps store order.
	SortByInsertion ContactSortField = "none"
)

// IsValid returns true if the field is recognised.
func (f ContactSortField) IsValid() bool {
	switch f {
	case SortByName, SortByBirthday, SortByEmail, SortByAddress, SortByPhones, SortByInsertion:
		return true
	default:
		return false
	}
}

// ContactSort describes how a contact listing is ordered.
type ContactSort struct {
	Field      ContactSortField
	Descending bool
}

// ParseContactSort parses a field name and a direction word.
// Direction words "desc", "reverse" and "true" select descending order.
func ParseContactSort(field, direction string) (ContactSort, error) {
	f := ContactSortField(strings.ToLower(strings.TrimSpace(field)))
	if f == "" {
		f = SortByName
	}
	if !f.IsValid() {
		return ContactSort{}, fmt.Errorf("%w: unknown sort field %q", ErrInvalidInput, field)
	}
	return ContactSort{Field: f, Descending: isDescending(direction)}, nil
}

// SortContacts orders contacts in place. The sort is stable, so equal keys
// keep store order.
func SortContacts(contacts []Contact, by ContactSort) {
	if by.Field == SortByInsertion {
		if by.Descending {
			for i, j := 0, len(contacts)-1; i < j; i, j = i+1, j-1 {
				contacts[i], contacts[j] = contacts[j], contacts[i]
			}
		}
		return
	}

	less := func(a, b *Contact) bool {
		switch by.Field {
		case SortByBirthday:
			if a.Birthday == nil || b.Birthday == nil {
				return a.Birthday != nil && b.Birthday == nil
			}
			return a.Birthday.Before(*b.Birthday)
		case SortByEmail:
			return a.Email < b.Email
		case SortByAddress:
			return a.Address < b.Address
		case SortByPhones:
			return firstPhone(a) < firstPhone(b)
		default:
			return a.Name < b.Name
		}
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		if by.Descending {
			return less(&contacts[j], &contacts[i])
		}
		return less(&contacts[i], &contacts[j])
	})
}

func firstPhone(c *Contact) string {
	numbers := c.PhoneNumbers()
	if len(numbers) == 0 {
		return ""
	}
	return numbers[0]
}

// NoteSortField names the column a note listing is ordered by.
type NoteSortField string

// Available note sort fields.
const (
	NoteSortByID       NoteSortField = "id"
	NoteSortByTitle    NoteSortField = "title"
	NoteSortByCreated  NoteSortField = "created"
	NoteSortByModified NoteSortField = "modified"
)

// NoteSort selects a note ordering.
type NoteSort struct {
	Field      NoteSortField
	Descending bool
}

// ParseNoteSort accepts the same direction words as ParseContactSort.
// An empty field orders by ID.
func ParseNoteSort(field, direction string) (NoteSort, error) {
	f := NoteSortField(strings.ToLower(strings.TrimSpace(field)))
	switch f {
	case "":
		f = NoteSortByID
	case NoteSortByID, NoteSortByTitle, NoteSortByCreated, NoteSortByModified:
	default:
		return NoteSort{}, fmt.Errorf("%w: unknown note sort field %q", ErrInvalidInput, field)
	}
	return NoteSort{Field: f, Descending: isDescending(direction)}, nil
}

// SortNotes orders notes in place. Ties fall back to ascending ID.
func SortNotes(notes []Note, by NoteSort) {
	key := func(a, b *Note) int {
		switch by.Field {
		case NoteSortByTitle:
			return strings.Compare(a.Title, b.Title)
		case NoteSortByCreated:
			return a.CreatedAt.Compare(b.CreatedAt)
		case NoteSortByModified:
			return a.ModifiedAt.Compare(b.ModifiedAt)
		default:
			return 0
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		a, b := &notes[i], &notes[j]
		if by.Descending {
			a, b = b, a
		}
		if c := key(a, b); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
}

func isDescending(direction string) bool {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "desc", "reverse", "true":
		return true
	default:
		return false
	}
}
