package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyPhone indicates phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidPhoneFormat indicates phone number contains invalid characters
	ErrInvalidPhoneFormat = errors.New("phone number can only contain digits, spaces, dashes and an optional leading +")

	// ErrInvalidLength indicates a Sri Lankan number is not 10 digits
	ErrInvalidLength = errors.New("phone number must be exactly 10 digits")

	// ErrInvalidPrefix indicates a Sri Lankan number has no known operator prefix
	ErrInvalidPrefix = errors.New("phone number must start with 070, 071, 072, 074, 075, 076, 077 or 078")
)

// localPrefixes contains the Sri Lankan mobile operator prefixes.
var localPrefixes = []string{
	"070", // Mobitel
	"071", // Mobitel
	"072", // Hutch
	"074", // Dialog
	"075", // Airtel
	"076", // Dialog
	"077", // Dialog
	"078", // Hutch
}

// phoneRegex matches an international-style phone number: optional leading
// plus, then digits with space/dash separators.
var phoneRegex = regexp.MustCompile(`^\+?[0-9\s-]+$`)

// digitsRegex matches digits only.
var digitsRegex = regexp.MustCompile(`^\d+$`)

// PhoneValidator validates booking contact phone numbers.
type PhoneValidator struct{}

// NewPhoneValidator creates a new phone validator instance.
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{}
}

// Validate checks a phone number in international format. It accepts any
// plausible number ("+94 77 123 4567", "0771234567"); full carrier-level
// validation is left to the input widget.
func (v *PhoneValidator) Validate(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrEmptyPhone
	}
	if !phoneRegex.MatchString(phone) {
		return ErrInvalidPhoneFormat
	}
	return nil
}

// ValidateLocal validates a Sri Lankan mobile number and returns it
// normalized to the local 10-digit form (0771234567).
// Accepts "0771234567", "077 123 4567", "077-123-4567" and "+94771234567".
func (v *PhoneValidator) ValidateLocal(phone string) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}

	sanitized := v.Sanitize(phone)

	if !digitsRegex.MatchString(sanitized) {
		return "", ErrInvalidPhoneFormat
	}
	if len(sanitized) != 10 {
		return "", ErrInvalidLength
	}
	if !v.hasLocalPrefix(sanitized) {
		return "", ErrInvalidPrefix
	}

	return sanitized, nil
}

// Sanitize removes separators and converts a 94-prefixed country-code
// number to the local leading-zero form.
func (v *PhoneValidator) Sanitize(phone string) string {
	for _, sep := range []string{" ", "-", "(", ")", "+", "."} {
		phone = strings.ReplaceAll(phone, sep, "")
	}

	if strings.HasPrefix(phone, "94") && len(phone) == 11 {
		phone = "0" + phone[2:]
	}

	return phone
}

func (v *PhoneValidator) hasLocalPrefix(phone string) bool {
	for _, prefix := range localPrefixes {
		if strings.HasPrefix(phone, prefix) {
			return true
		}
	}
	return false
}
