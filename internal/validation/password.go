package validation

import (
	"errors"
	"unicode/utf8"
)

const minPasswordLength = 8

var (
	ErrWeakPassword    = errors.New("Password must be at least 8 characters with uppercase, lowercase, and number")
	ErrPasswordTooLong = errors.New("Password must not exceed 72 characters")
)

// IsValidPassword requires at least 8 characters including an ASCII
// uppercase letter, an ASCII lowercase letter and an ASCII digit.
// Length is counted in runes; other characters are allowed but count
// toward no class.
func IsValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case 'A' <= r && r <= 'Z':
			upper = true
		case 'a' <= r && r <= 'z':
			lower = true
		case '0' <= r && r <= '9':
			digit = true
		}
	}
	return upper && lower && digit
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if !IsValidPassword(password) {
		return ErrWeakPassword
	}

	// Maximum length: 72 bytes (bcrypt limitation)
	if len(password) > 72 {
		return ErrPasswordTooLong
	}

	return nil
}
