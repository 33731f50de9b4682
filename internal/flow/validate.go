package flow

import (
	"strings"

	"github.com/mathangi54/travel-booking-client/internal/models"
	"github.com/mathangi54/travel-booking-client/pkg/validator"
)

var phoneValidator = validator.NewPhoneValidator()

// validateStep1Locked checks the package-selection step: traveler count in
// bounds. Caller must hold the lock.
func (c *Controller) validateStep1Locked() bool {
	delete(c.fieldErrors, "numberOfPeople")

	if c.draft.TravelerCount < models.MinTravelers || c.draft.TravelerCount > models.MaxTravelers {
		c.fieldErrors["numberOfPeople"] = msgInvalidTravelers
	}

	return !c.hasStepErrorsLocked("numberOfPeople")
}

// validateStep2Locked checks the contact step: name, email, phone. Caller
// must hold the lock.
func (c *Controller) validateStep2Locked() bool {
	for _, key := range []string{"fullName", "email", "phone"} {
		delete(c.fieldErrors, key)
	}

	info := c.draft.PersonalInfo

	if strings.TrimSpace(info.FullName) == "" {
		c.fieldErrors["fullName"] = "Full name is required"
	}

	if err := validator.ValidateEmail(info.Email); err != nil {
		c.fieldErrors["email"] = err.Error()
	}

	if err := phoneValidator.Validate(info.Phone); err != nil {
		c.fieldErrors["phone"] = err.Error()
	}

	return !c.hasStepErrorsLocked("fullName", "email", "phone")
}

func (c *Controller) hasStepErrorsLocked(keys ...string) bool {
	for _, key := range keys {
		if _, ok := c.fieldErrors[key]; ok {
			return true
		}
	}
	return false
}
