package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneValidator(t *testing.T) {
	validator := NewPhoneValidator()
	assert.NotNil(t, validator)
}

func TestValidate_AcceptsInternationalFormats(t *testing.T) {
	validator := NewPhoneValidator()

	validNumbers := []struct {
		input string
		name  string
	}{
		{"0771234567", "Local format"},
		{"+94771234567", "Country code with plus"},
		{"+94 77 123 4567", "Country code with spaces"},
		{"077-123-4567", "With dashes"},
		{"+1 555 0100", "Foreign number"},
	}

	for _, tc := range validNumbers {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, validator.Validate(tc.input))
		})
	}
}

func TestValidate_RejectsInvalidInput(t *testing.T) {
	validator := NewPhoneValidator()

	invalidNumbers := []struct {
		input       string
		expectedErr error
		name        string
	}{
		{"", ErrEmptyPhone, "Empty string"},
		{"   ", ErrEmptyPhone, "Whitespace only"},
		{"call me", ErrInvalidPhoneFormat, "Contains letters"},
		{"077123456!", ErrInvalidPhoneFormat, "Special characters"},
		{"077+1234567", ErrInvalidPhoneFormat, "Plus not leading"},
	}

	for _, tc := range invalidNumbers {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.Validate(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.expectedErr, err)
		})
	}
}

func TestValidateLocal_ValidNumbers(t *testing.T) {
	validator := NewPhoneValidator()

	validNumbers := []struct {
		input    string
		expected string
		name     string
	}{
		{"0771234567", "0771234567", "Standard format"},
		{"077 123 4567", "0771234567", "With spaces"},
		{"077-123-4567", "0771234567", "With dashes"},
		{"(077) 123 4567", "0771234567", "With parentheses"},
		{"0701234567", "0701234567", "Mobitel 070"},
		{"0721234567", "0721234567", "Hutch 072"},
		{"0751234567", "0751234567", "Airtel 075"},
		{"0761234567", "0761234567", "Dialog 076"},
		{"94771234567", "0771234567", "With country code"},
		{"+94771234567", "0771234567", "With plus country code"},
	}

	for _, tc := range validNumbers {
		t.Run(tc.name, func(t *testing.T) {
			sanitized, err := validator.ValidateLocal(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sanitized)
		})
	}
}

func TestValidateLocal_InvalidNumbers(t *testing.T) {
	validator := NewPhoneValidator()

	invalidNumbers := []struct {
		input       string
		expectedErr error
		name        string
	}{
		{"", ErrEmptyPhone, "Empty string"},
		{"123", ErrInvalidLength, "Too short"},
		{"07712345678", ErrInvalidLength, "Too long"},
		{"0791234567", ErrInvalidPrefix, "Unknown prefix 079"},
		{"0731234567", ErrInvalidPrefix, "Unknown prefix 073"},
		{"077123456a", ErrInvalidPhoneFormat, "Contains letters"},
		{"1234567890", ErrInvalidPrefix, "Valid length but invalid prefix"},
	}

	for _, tc := range invalidNumbers {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validator.ValidateLocal(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.expectedErr, err)
		})
	}
}

func TestSanitize(t *testing.T) {
	validator := NewPhoneValidator()

	tests := []struct {
		input    string
		expected string
	}{
		{"077 123 4567", "0771234567"},
		{"077-123-4567", "0771234567"},
		{"(077) 123 4567", "0771234567"},
		{"+94771234567", "0771234567"},
		{"94771234567", "0771234567"},
		{"0771234567", "0771234567"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, validator.Sanitize(tc.input))
	}
}
