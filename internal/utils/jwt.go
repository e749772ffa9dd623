package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiryClaim is returned by TokenExpiry when the token parses but
// carries no exp claim.
var ErrNoExpiryClaim = errors.New("token has no expiry claim")

// tokenParser skips claims validation: the provider signed the token with a
// key this client does not hold, so only the payload is inspected.
var tokenParser = jwt.NewParser(jwt.WithoutClaimsValidation())

// TokenExpiry extracts the exp claim from a provider-issued access token
// without verifying its signature. The client uses it purely to decide
// whether a cached session is worth presenting; the server remains the
// authority on token validity.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := tokenParser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if expiresAt == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return expiresAt.Time, nil
}
