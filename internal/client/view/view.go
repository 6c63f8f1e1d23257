// Package view holds per-screen client state. Each view owns its data,
// applies server responses to it, and renders itself as text.
package view

import (
	"context"
	"errors"
	"strings"

	"github.com/templui/taskboard/internal/client"
	"github.com/templui/taskboard/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// API is the subset of *client.Client the views call.
type API interface {
	Profile(ctx context.Context) (*model.PublicUser, error)
	UpdateProfile(ctx context.Context, in model.ProfileInput) (*model.PublicUser, error)

	Boards(ctx context.Context) ([]*model.Board, error)
	CreateBoard(ctx context.Context, in model.BoardInput) (*model.Board, error)
	Board(ctx context.Context, boardID string) (*model.BoardDetail, error)
	DeleteBoard(ctx context.Context, boardID string) error

	CreateTodo(ctx context.Context, boardID string, in model.TodoInput) (*model.Todo, error)
	UpdateTodo(ctx context.Context, boardID, todoID string, patch model.TodoPatch) (*model.Todo, error)
	DeleteTodo(ctx context.Context, boardID, todoID string) error
}

var _ API = (*client.Client)(nil)

var titleCaser = cases.Title(language.English)

// Label turns an enum value like "in_progress" into "In Progress".
func Label(value string) string {
	return titleCaser.String(strings.ReplaceAll(value, "_", " "))
}

// failure builds the message shown for a failed action. The server's
// message is preferred when there is one.
func failure(fallback string, err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fallback + ": " + apiErr.Message
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
