package jwtmw

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextToken is the gin context key holding the raw bearer token.
const ContextToken = "sessionToken"

// SessionToken returns a middleware that extracts the bearer token from the
// Authorization header and stashes it in the request context.
//
// It deliberately never aborts: every action re-derives and fully validates
// the session itself (including revocation), and an absent session must
// surface as a redirect to the login page rather than a flat 401.
func SessionToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			c.Set(ContextToken, strings.TrimPrefix(auth, "Bearer "))
		}
		c.Next()
	}
}

// TokenFromContext returns the bearer token stored by SessionToken, or "".
func TokenFromContext(c *gin.Context) string {
	return c.GetString(ContextToken)
}
