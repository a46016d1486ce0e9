package auth

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"roomieflow/cli/internal/backend"
)

var (
	reUpper = regexp.MustCompile(`[A-Z]`)
	reLower = regexp.MustCompile(`[a-z]`)
	reDigit = regexp.MustCompile(`\d`)
)

// ValidateCredentials checks login input before it is sent.
func ValidateCredentials(c backend.Credentials) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required.Error("username or email is required")),
		validation.Field(&c.Password, validation.Required.Error("password is required")),
	)
}

// ValidateRegistration applies the API's account rules locally so that obvious
// mistakes are reported without a round trip.
func ValidateRegistration(r backend.Registration) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required"), validation.Length(1, 50)),
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.Email, validation.Length(0, 100)),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 0).Error("must be at least 8 characters long"),
			validation.Match(reUpper).Error("must contain at least one uppercase letter"),
			validation.Match(reLower).Error("must contain at least one lowercase letter"),
			validation.Match(reDigit).Error("must contain at least one number"),
		),
	)
}

// NormalizeRegistration trims the fields the API trims and lowercases the email.
func NormalizeRegistration(r backend.Registration) backend.Registration {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return r
}
