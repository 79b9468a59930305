// Package jwtmw signs and verifies the session tokens carried between requests.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret is the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// Codec signs and verifies HS256 session tokens. A token binds a user id
// (sub) to an opaque session id (sid); revocation state lives with the
// session store, not in the token.
type Codec struct {
	secret     []byte
	expiration time.Duration
}

// NewCodec creates a new Codec with the provided secret and token lifetime.
func NewCodec(secret string, expiration time.Duration) *Codec {
	return &Codec{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Sign creates a signed token with standard claims plus the session id.
func (c *Codec) Sign(userID uint, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"sid": sessionID,
		"exp": now.Add(c.expiration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry and returns the embedded ids.
func (c *Codec) Verify(tokenStr string) (uint, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", jwt.ErrSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	return uint(sub), sid, nil
}
