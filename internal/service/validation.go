package service

import (
	"fmt"
	"net/mail"
	"regexp"

	"github.com/MKhiriev/go-admin-keeper/models"
)

// Input length bounds carried over from the public API contract.
const (
	minNameLength     = 3
	maxNameLength     = 500
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
)

// validateNewAdmin checks the create-admin payload before any store
// access. Failures wrap [ErrValidation] with a human-readable message.
func validateNewAdmin(query models.NewAdmin) error {
	if l := len(query.Name); l < minNameLength || l > maxNameLength {
		return fmt.Errorf("%w: invalid name length, min %d and max %d characters", ErrValidation, minNameLength, maxNameLength)
	}

	if err := validateEmail(query.Email); err != nil {
		return err
	}

	if err := validatePhoneNum(query.PhoneNum); err != nil {
		return err
	}

	if err := validatePassword(query.Password); err != nil {
		return err
	}

	return validatePassword(query.ConfirmPassword)
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email not valid, please enter valid email address", ErrValidation)
	}

	return nil
}

// phoneNumPattern accepts international numbers in +<country><subscriber>
// form, 7 to 15 digits total.
var phoneNumPattern = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

// validatePhoneNum checks the phone number format. The field is optional:
// an empty value passes, a non-empty value must be a valid international
// number.
func validatePhoneNum(phoneNum string) error {
	if phoneNum == "" {
		return nil
	}

	if !phoneNumPattern.MatchString(phoneNum) {
		return fmt.Errorf("%w: invalid phone number: %s", ErrValidation, phoneNum)
	}

	return nil
}

func validatePassword(password string) error {
	if l := len(password); l < minPasswordLength || l > maxPasswordLength {
		return fmt.Errorf("%w: invalid password length, min %d and max %d characters", ErrValidation, minPasswordLength, maxPasswordLength)
	}

	return nil
}

func validateListQuery(query models.ListQuery) error {
	if query.Offset < 0 || query.Limit < 0 {
		return fmt.Errorf("%w: offset and limit must be non-negative", ErrValidation)
	}

	return nil
}
