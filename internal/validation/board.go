package validation

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

const maxBoardTitleLength = 100

var colorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

var (
	ErrBoardTitleRequired = errors.New("Board title is required")
	ErrBoardTitleTooLong  = errors.New("Board title must be at most 100 characters")
	ErrInvalidColor       = errors.New("Color must be a hex value like #3498db")
)

func ValidateBoardTitle(title string) error {
	if title == "" {
		return ErrBoardTitleRequired
	}
	if utf8.RuneCountInString(title) > maxBoardTitleLength {
		return ErrBoardTitleTooLong
	}
	return nil
}

func ValidateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return ErrInvalidColor
	}
	return nil
}
