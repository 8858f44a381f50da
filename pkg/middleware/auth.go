package middleware

import (
	"net/http"
	"strings"

	"reelhub/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Principal is the authenticated identity attached to a request after token
// verification.
type Principal struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserResolver loads the current user record for a verified token. Returning
// an error rejects the request with 401: a token whose user no longer exists
// is as invalid as a bad signature.
type UserResolver func(userID string) (*Principal, error)

func AuthMiddleware(jwtService *jwt.Service, resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		principal, err := resolve(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set("user_id", principal.ID)
		c.Set("user_role", principal.Role)
		c.Next()
	}
}

// RequireRole rejects requests whose principal's role is not in the allowed
// set. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		c.Abort()
	}
}

// CurrentPrincipal returns the principal set by AuthMiddleware, or nil on
// unauthenticated routes.
func CurrentPrincipal(c *gin.Context) *Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*Principal); ok {
			return p
		}
	}
	return nil
}
