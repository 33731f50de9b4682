package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail_ValidAddresses(t *testing.T) {
	validAddresses := []struct {
		input string
		name  string
	}{
		{"nimal@example.com", "Plain address"},
		{"nimal.perera@example.co.uk", "Dotted local part and multi-level domain"},
		{"nimal+tours@example.com", "Plus tag"},
		{"n@e.io", "Short address"},
	}

	for _, tc := range validAddresses {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, ValidateEmail(tc.input))
		})
	}
}

func TestValidateEmail_InvalidAddresses(t *testing.T) {
	invalidAddresses := []struct {
		input       string
		expectedErr error
		name        string
	}{
		{"", ErrEmptyEmail, "Empty string"},
		{"   ", ErrEmptyEmail, "Whitespace only"},
		{"nimal", ErrInvalidEmail, "No at sign"},
		{"nimal@example", ErrInvalidEmail, "No top-level domain"},
		{"@example.com", ErrInvalidEmail, "No local part"},
		{"nimal @example.com", ErrInvalidEmail, "Space in local part"},
		{"nimal@exa mple.com", ErrInvalidEmail, "Space in domain"},
		{"nimal@@example.com", ErrInvalidEmail, "Double at sign"},
	}

	for _, tc := range invalidAddresses {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEmail(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.expectedErr, err)
		})
	}
}
