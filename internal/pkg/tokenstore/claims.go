package tokenstore

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrNoExpiry is returned by Claims.ExpiresIn for tokens without exp
var ErrNoExpiry = errors.New("token has no expiry")

// Claims are the user claims the API embeds in access tokens
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Inspect decodes the claims of token WITHOUT verifying its signature.
// The server is the only authority on validity; this is used for logging
// and to learn the local user id when /auth/me is unavailable.
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresIn returns the time left before the token expires
func (c *Claims) ExpiresIn(now time.Time) (time.Duration, error) {
	if c.ExpiresAt == nil {
		return 0, ErrNoExpiry
	}
	return c.ExpiresAt.Time.Sub(now), nil
}
