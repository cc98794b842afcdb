package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestSessionEmptyTokenIsInvalid(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Valid())
	assert.Empty(t, s.Token())
}

func TestSessionValidUntilExpiry(t *testing.T) {
	s := NewSession()
	s.SetToken(signedToken(t, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	assert.True(t, s.Valid())

	s.SetToken(signedToken(t, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}))
	assert.False(t, s.Valid())
}

func TestSessionTokenWithoutExpiryIsUsable(t *testing.T) {
	s := NewSession()
	s.SetToken(signedToken(t, jwt.MapClaims{"sub": "7"}))
	assert.True(t, s.Valid())
}

func TestSessionMalformedTokenIsInvalid(t *testing.T) {
	s := NewSession()
	s.SetToken("not-a-jwt")
	assert.False(t, s.Valid())
}

func TestSessionClear(t *testing.T) {
	s := NewSession()
	s.SetToken(signedToken(t, jwt.MapClaims{"sub": "7"}))
	s.SetUser(models.User{ID: 7, Email: "anh@example.com"})

	s.Clear()
	assert.Empty(t, s.Token())
	assert.Equal(t, models.User{}, s.User())
	assert.False(t, s.Valid())
}
