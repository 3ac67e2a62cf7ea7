package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld with no whitespace and a single @ per side
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Lowercase kebab-case identifiers used in URLs
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// New returns a validator with the custom tags already registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
	_ = v.RegisterValidation("slug", Slug)
}

// IsContactEmail reports whether s has the local@domain.tld shape
func IsContactEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ContactEmail validates the loose email shape accepted by the contact form.
// It is deliberately more permissive than the builtin "email" tag.
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return IsContactEmail(val)
}

// Slug validates a kebab-case identifier
func Slug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}
