package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
	"github.com/AnshDabra27/jet-set-go/internal/token"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
)

// Auth verifies the bearer token and attaches the requesting user's id and
// role to the request context. Unauthenticated requests never reach the
// services.
func Auth(tokens *token.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrUnauthorized.Error()},
			)
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

// AdminOnly gates the tour admin surface. Runs after Auth.
func AdminOnly() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(UserRoleKey) != string(domain.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "admin access required"},
			)
			return
		}

		c.Next()
	}
}
