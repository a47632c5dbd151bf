package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the "exp" claim from a bearer token without
// verifying its signature. The client has no signing key — verification is
// the server's job; the expiry is read only to distinguish a stale local
// session from a server-side rejection before spending a network round trip.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token claims: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}

	return claims.ExpiresAt.Time, nil
}

// IsTokenExpired reports whether token's exp claim lies at or before now.
// A token that cannot be parsed is treated as expired.
func IsTokenExpired(token string, now time.Time) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return true
	}
	return !exp.After(now)
}
