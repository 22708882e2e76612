package validation

import (
	"regexp"
	"strings"

	"nexttick/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	emailRegex    *regexp.Regexp
	fullNameStrip *regexp.Regexp
	config        *config.Config
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return NewValidatorWithConfig(nil)
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		emailRegex:    regexp.MustCompile(`\S+@\S+\.\S+`),
		fullNameStrip: regexp.MustCompile(`[^a-zA-Z ]`),
		config:        cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidEmail checks the minimal text@text.text shape used to unlock
// dependent actions
func (v *Validator) IsValidEmail(email string) bool {
	return v.emailRegex.MatchString(email)
}

// IsValidPassword checks that a password meets the minimum length
func (v *Validator) IsValidPassword(password string) bool {
	return len(password) >= v.getPasswordMinLength()
}

// SanitizeFullName strips non-alphabetic characters (keeping spaces)
// and caps the result at the configured maximum length. Disallowed
// characters are silently removed, never rejected.
func (v *Validator) SanitizeFullName(name string) string {
	sanitized := v.fullNameStrip.ReplaceAllString(name, "")
	maxLen := v.getFullNameMaxLength()
	if len(sanitized) > maxLen {
		sanitized = sanitized[:maxLen]
	}
	return sanitized
}

// TrimString trims whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// getTitleMaxLength returns configured maximum title length or default
func (v *Validator) getTitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 100
}

// getDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 300
}

// getFullNameMaxLength returns configured maximum full name length or default
func (v *Validator) getFullNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.FullNameMaxLength
	}
	return 30
}

// getPasswordMinLength returns configured minimum password length or default
func (v *Validator) getPasswordMinLength() int {
	if v.config != nil {
		return v.config.Validation.PasswordMinLength
	}
	return 8
}
