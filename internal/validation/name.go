package validation

import (
	"errors"
	"unicode/utf8"
)

const maxNameLength = 100

var ErrNameTooLong = errors.New("Name is too long (max 100 characters)")

// ValidateName validates an optional first or last name
func ValidateName(name string) error {
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}
