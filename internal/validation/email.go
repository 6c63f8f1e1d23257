package validation

import (
	"errors"
	"regexp"
)

// emailPattern is deliberately loose: something, @, something with a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var ErrInvalidEmail = errors.New("Invalid email format")

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateEmail validates email shape and length
func ValidateEmail(email string) error {
	// RFC 5321 total limit
	if len(email) > 254 || !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}
