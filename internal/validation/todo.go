package validation

import (
	"errors"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/templui/taskboard/internal/model"
)

const maxTodoTitleLength = 255

var (
	ErrTodoTitleRequired = errors.New("Todo title is required")
	ErrTodoTitleTooLong  = errors.New("Todo title must be at most 255 characters")
	ErrInvalidStatus     = errors.New("Status must be one of todo, in_progress, completed")
	ErrInvalidPriority   = errors.New("Priority must be one of low, medium, high")
	ErrInvalidDueDate    = errors.New("Due date must be YYYY-MM-DD or RFC 3339")
)

func ValidateTodoTitle(title string) error {
	if title == "" {
		return ErrTodoTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTodoTitleLength {
		return ErrTodoTitleTooLong
	}
	return nil
}

func ValidateStatus(status string) error {
	if !slices.Contains(model.TodoStatuses, status) {
		return ErrInvalidStatus
	}
	return nil
}

func ValidatePriority(priority string) error {
	if !slices.Contains(model.TodoPriorities, priority) {
		return ErrInvalidPriority
	}
	return nil
}

// ParseDueDate accepts a calendar date or a full timestamp and returns it in UTC.
func ParseDueDate(s string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDueDate
}
