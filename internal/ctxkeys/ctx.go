package ctxkeys

import (
	"context"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserIDKey contextKey = "user_id"
)

// UserID returns the authenticated user's id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}
