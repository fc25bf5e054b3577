package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// DateLayout is the textual birthday format accepted and printed by Lotus.
const DateLayout = "02.01.2006"

// NormalizeName builds the contact store key from a user-supplied name.
// Every store operation goes through this function so that writes and
// lookups always agree on the key.
func NormalizeName(name string) string {
	// Casers are stateful, so a fresh one is used per call.
	return cases.Fold().String(strings.TrimSpace(name))
}

// Date is a calendar date without time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given components.
// Components that do not name a real calendar day yield ErrInvalidInput.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidInput, year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses a DD.MM.YYYY string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must use DD.MM.YYYY", ErrInvalidInput, value)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// String formats the date as DD.MM.YYYY.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// Contact is an address-book record.
type Contact struct {
	// Name is the normalised name; it is the store key.
	Name string

	// Phones maps a phone number to its free-text label.
	Phones map[string]string

	// Birthday is optional.
	Birthday *Date

	// Email is optional; empty means unset.
	Email string

	// Address is optional; empty means unset.
	Address string
}

// NewContact creates an empty contact for the given name.
func NewContact(name string) *Contact {
	return &Contact{
		Name:   NormalizeName(name),
		Phones: make(map[string]string),
	}
}

// SetPhone inserts the phone or overwrites its label.
func (c *Contact) SetPhone(number, label string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("%w: phone number is empty", ErrInvalidInput)
	}
	if c.Phones == nil {
		c.Phones = make(map[string]string)
	}
	c.Phones[number] = label
	return nil
}

// RemovePhone deletes the phone.
func (c *Contact) RemovePhone(number string) error {
	number = strings.TrimSpace(number)
	if _, ok := c.Phones[number]; !ok {
		return fmt.Errorf("phone %q: %w", number, ErrNotFound)
	}
	delete(c.Phones, number)
	return nil
}

// RenamePhone replaces oldNumber with newNumber in a single step.
// All checks run before the phone set is touched, so a failed rename
// leaves oldNumber in place.
func (c *Contact) RenamePhone(oldNumber, newNumber, label string) error {
	oldNumber = strings.TrimSpace(oldNumber)
	newNumber = strings.TrimSpace(newNumber)
	if _, ok := c.Phones[oldNumber]; !ok {
		return fmt.Errorf("phone %q: %w", oldNumber, ErrNotFound)
	}
	if newNumber == "" {
		return fmt.Errorf("%w: new phone number is empty", ErrInvalidInput)
	}
	delete(c.Phones, oldNumber)
	c.Phones[newNumber] = label
	return nil
}

// HasPhone reports whether the contact holds the exact number.
func (c *Contact) HasPhone(number string) bool {
	_, ok := c.Phones[strings.TrimSpace(number)]
	return ok
}

// PhoneNumbers returns the phone numbers in ascending order.
func (c *Contact) PhoneNumbers() []string {
	numbers := make([]string, 0, len(c.Phones))
	for n := range c.Phones {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}

// SetBirthday sets the birthday.
func (c *Contact) SetBirthday(d Date) {
	c.Birthday = &d
}

// SetEmail sets the email address.
func (c *Contact) SetEmail(email string) {
	c.Email = strings.TrimSpace(email)
}

// SetAddress sets the postal address.
func (c *Contact) SetAddress(address string) {
	c.Address = strings.TrimSpace(address)
}

// Clone returns a deep copy of the contact.
func (c *Contact) Clone() Contact {
	out := Contact{
		Name:    c.Name,
		Phones:  make(map[string]string, len(c.Phones)),
		Email:   c.Email,
		Address: c.Address,
	}
	for n, l := range c.Phones {
		out.Phones[n] = l
	}
	if c.Birthday != nil {
		b := *c.Birthday
		out.Birthday = &b
	}
	return out
}
