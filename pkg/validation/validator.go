// Package validation holds the structural checks run on auth payloads before
// anything touches storage. Checks short-circuit: the first violated rule's
// message is returned, empty string means valid.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRegisterInput checks a registration payload. Phone is optional but
// must look like an international number when present.
func ValidateRegisterInput(name, email, password, phone string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required"
	}
	// Characters, not bytes: a Cyrillic or CJK name must not hit the upper
	// bound at half its length.
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return "Name must be between 2 and 50 characters"
	}
	if msg := validateEmail(email); msg != "" {
		return msg
	}
	if msg := validatePassword(password); msg != "" {
		return msg
	}
	if phone != "" {
		if err := validate.Var(phone, "e164"); err != nil {
			return "Please enter a valid phone number"
		}
	}
	return ""
}

// ValidateLoginInput checks a login payload.
func ValidateLoginInput(email, password string) string {
	if msg := validateEmail(email); msg != "" {
		return msg
	}
	return validatePassword(password)
}

func validateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if err := validate.Var(email, "email"); err != nil {
		return "Please provide a valid email"
	}
	return ""
}

func validatePassword(password string) string {
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

// NormalizeEmail lowercases and trims an address; the lowercased form is the
// natural key in storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
