// Package validation checks the format of contact phone numbers and email
// addresses before they reach the contact store.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.Validator = (*Validator)(nil)

var (
	// phonePattern accepts Ukrainian numbers: +38 followed by ten digits.
	phonePattern = regexp.MustCompile(`^\+38\d{10}$`)

	emailPattern = regexp.MustCompile(`^[\w.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z]{2,}$`)
)

// Validator checks phones and emails against fixed formats.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePhone accepts "+38" followed by exactly ten digits.
// Spaces are ignored, so "+38 050 111 22 33" is valid.
func (v *Validator) ValidatePhone(phone string) error {
	compact := strings.ReplaceAll(phone, " ", "")
	if !phonePattern.MatchString(compact) {
		return fmt.Errorf("%w: phone %q must be +38 followed by 10 digits", domain.ErrInvalidInput, phone)
	}
	return nil
}

// ValidateEmail accepts addresses of the form local@domain.tld.
func (v *Validator) ValidateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("%w: %q is not a valid email address", domain.ErrInvalidInput, email)
	}
	return nil
}
