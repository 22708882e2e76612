package validation

import (
	"fmt"

	"nexttick/internal/config"
	"nexttick/internal/domain"
	"nexttick/internal/errors"
)

// UserValidator checks login and registration input. These are shape
// checks only: credentials are never compared against the stored
// record.
type UserValidator struct {
	validator *Validator
}

// NewUserValidator creates a new user validator with default limits
func NewUserValidator() *UserValidator {
	return &UserValidator{validator: NewValidator()}
}

// NewUserValidatorWithConfig creates a new user validator with configuration
func NewUserValidatorWithConfig(cfg *config.Config) *UserValidator {
	return &UserValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateCredentials checks the local shape of login input: email
// format and password length. First violation wins.
func (uv *UserValidator) ValidateCredentials(creds domain.Credentials) error {
	if !uv.validator.IsValidEmail(creds.Email) {
		return errors.NewValidationError("Invalid email format.")
	}
	if !uv.validator.IsValidPassword(creds.Password) {
		return errors.NewValidationError(fmt.Sprintf(
			"Password must be at least %d characters long.", uv.validator.getPasswordMinLength()))
	}
	return nil
}

// ValidateRegistration checks registration input shape: email format,
// password length, and confirmation match.
func (uv *UserValidator) ValidateRegistration(fields domain.RegistrationFields) error {
	if !uv.validator.IsValidEmail(fields.Email) {
		return errors.NewValidationError("Invalid email format.")
	}
	if !uv.validator.IsValidPassword(fields.Password) {
		return errors.NewValidationError(fmt.Sprintf(
			"Password must be at least %d characters long.", uv.validator.getPasswordMinLength()))
	}
	if fields.ConfirmPassword != fields.Password {
		return errors.NewValidationError("Passwords do not match.")
	}
	return nil
}

// BuildUserRecord assembles the record persisted for a registration,
// sanitizing the full name the way the input field does.
func (uv *UserValidator) BuildUserRecord(fields domain.RegistrationFields) domain.UserRecord {
	return domain.UserRecord{
		FullName:    uv.validator.SanitizeFullName(fields.FullName),
		Email:       fields.Email,
		Password:    fields.Password,
		PhoneNumber: fields.PhoneNumber,
		PhoneExt:    fields.PhoneExt,
		DateOfBirth: fields.DateOfBirth,
	}
}
