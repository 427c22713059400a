// Package identity guards protected routes with bearer access tokens.
package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-mazestats/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserClaims is the key used to store token claims in the Gin context.
	ContextUserClaims = "userClaims"

	// ContextSubject is the key used to store the token subject in the Gin context.
	ContextSubject = "subject"
)

func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Every access token names who it was issued to.
		subject, _ := claims["sub"].(string)
		if subject == "" {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Set(ContextSubject, subject)
		c.Next()
	}
}
