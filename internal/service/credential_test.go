package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialService_Passwords(t *testing.T) {
	c := NewCredentialService("secret", time.Hour, bcrypt.MinCost)

	hash, err := c.HashPassword("Abcdef12")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef12", hash)

	assert.True(t, c.VerifyPassword("Abcdef12", hash))
	assert.False(t, c.VerifyPassword("Abcdef13", hash))
	assert.False(t, c.VerifyPassword("Abcdef12", "not-a-hash"))

	other, err := c.HashPassword("Abcdef12")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes are salted")
}

func TestCredentialService_TokenRoundTrip(t *testing.T) {
	c := NewCredentialService("secret", time.Hour, bcrypt.MinCost)

	tokenA, err := c.IssueToken("user-a")
	require.NoError(t, err)
	tokenB, err := c.IssueToken("user-b")
	require.NoError(t, err)

	id, ok := c.VerifyToken(tokenA)
	require.True(t, ok)
	assert.Equal(t, "user-a", id)

	id, ok = c.VerifyToken(tokenB)
	require.True(t, ok)
	assert.Equal(t, "user-b", id)
}

func TestCredentialService_TamperedSignature(t *testing.T) {
	c := NewCredentialService("secret", time.Hour, bcrypt.MinCost)
	token, err := c.IssueToken("user-a")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, ok := c.VerifyToken(tampered)
	assert.False(t, ok)
}

func TestCredentialService_RejectsInvalidTokens(t *testing.T) {
	c := NewCredentialService("secret", time.Hour, bcrypt.MinCost)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewCredentialService("other-secret", time.Hour, bcrypt.MinCost)
		token, err := other.IssueToken("user-a")
		require.NoError(t, err)
		_, ok := c.VerifyToken(token)
		assert.False(t, ok)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewCredentialService("secret", time.Hour, bcrypt.MinCost)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.IssueToken("user-a")
		require.NoError(t, err)
		_, ok := c.VerifyToken(token)
		assert.False(t, ok)
	})

	t.Run("malformed", func(t *testing.T) {
		_, ok := c.VerifyToken("not.a.token")
		assert.False(t, ok)
		_, ok = c.VerifyToken("")
		assert.False(t, ok)
	})

	t.Run("unsigned", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			UserID: "user-a",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, ok := c.VerifyToken(s)
		assert.False(t, ok)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-a"})
		s, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, ok := c.VerifyToken(s)
		assert.False(t, ok)
	})
}

func TestCredentialService_ExpiryIsConfigured(t *testing.T) {
	c := NewCredentialService("secret", 7*24*time.Hour, bcrypt.MinCost)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	token, err := c.IssueToken("user-a")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(7*24*time.Hour), claims.ExpiresAt.Time.UTC())
	assert.Equal(t, "user-a", claims.Subject)
}
