package ctxkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, UserID(ctx))

	ctx = WithUserID(ctx, "u1")
	assert.Equal(t, "u1", UserID(ctx))

	// a plain string key with the same text does not collide
	other := context.WithValue(context.Background(), "user_id", "spoofed")
	assert.Empty(t, UserID(other))
}
