package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-provider-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiry(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	tokenString := signedToken(t, jwt.RegisteredClaims{
		Subject:   "acc-1",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})

	got, err := TokenExpiry(tokenString)
	require.NoError(t, err)
	assert.True(t, got.Equal(expiry), "want %v, got %v", expiry, got)
}

func TestTokenExpiry_ExpiredTokenStillParses(t *testing.T) {
	expiry := time.Now().Add(-time.Hour).Truncate(time.Second)
	tokenString := signedToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiry),
	})

	got, err := TokenExpiry(tokenString)
	require.NoError(t, err)
	assert.True(t, got.Before(time.Now()))
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	tokenString := signedToken(t, jwt.RegisteredClaims{Subject: "acc-1"})

	_, err := TokenExpiry(tokenString)
	assert.ErrorIs(t, err, ErrNoExpiryClaim)
}

func TestTokenExpiry_Garbage(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}
