// Package service declares the domain service contracts consumed by the
// application layer.
package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned when a token is malformed or its signature
// does not verify.
var ErrTokenInvalid = errors.New("token invalid")

// ErrTokenExpired is returned when a token verifies but its expiry has
// elapsed.
var ErrTokenExpired = errors.New("token expired")

// Claims carries the verified content of an access token. Subject holds the
// authenticated username; it is the only identity source downstream code may
// trust.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the token subject.
func (c *Claims) Username() string {
	return c.Subject
}

// TokenService mints and verifies signed, time-limited session tokens bound
// to a username. Verification is a pure computation; validity is re-derived
// from the token itself on every presentation.
type TokenService interface {
	// Issue produces a signed token embedding the username as subject with
	// the configured lifetime.
	Issue(username string) (string, error)

	// Validate checks signature and expiry, returning the embedded claims.
	// It returns ErrTokenExpired for elapsed tokens and ErrTokenInvalid for
	// anything else that fails verification.
	Validate(tokenString string) (*Claims, error)
}
