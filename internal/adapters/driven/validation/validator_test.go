package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

func TestValidator_ValidatePhone(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "compact", phone: "+380501112233", valid: true},
		{name: "with spaces", phone: "+38 050 111 22 33", valid: true},
		{name: "missing plus", phone: "380501112233", valid: false},
		{name: "local format", phone: "0501112233", valid: false},
		{name: "too short", phone: "+38050111223", valid: false},
		{name: "too long", phone: "+3805011122334", valid: false},
		{name: "other country", phone: "+440501112233", valid: false},
		{name: "letters", phone: "+38050111223x", valid: false},
		{name: "dashes", phone: "+38-050-111-22-33", valid: false},
		{name: "empty", phone: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePhone(tt.phone)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			}
		})
	}
}

func TestValidator_ValidateEmail(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "simple", email: "ann@example.com", valid: true},
		{name: "dots and plus", email: "ann.lee+pim@example.com", valid: true},
		{name: "dashed domain", email: "ann@my-mail.org", valid: true},
		{name: "surrounding space", email: "  ann@example.com ", valid: true},
		{name: "no at", email: "ann.example.com", valid: false},
		{name: "no tld", email: "ann@example", valid: false},
		{name: "short tld", email: "ann@example.c", valid: false},
		{name: "subdomain", email: "ann@mail.example.com", valid: false},
		{name: "empty", email: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			}
		})
	}
}
