package driven

// Validator checks the format of contact fields before they reach the store.
// Implementations return an error wrapping domain.ErrInvalidInput.
type Validator interface {
	// ValidatePhone checks a phone number.
	ValidatePhone(phone string) error

	// ValidateEmail checks an email address.
	ValidateEmail(email string) error
}
