package middleware

import (
	"context"
	"net/http"
	"strings"

	"staffhub/internal/model"
	"staffhub/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextClaimsKey = "claims"
	ContextEmailKey  = "email"
)

// TokenVerifier validates a bearer credential and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// RoleChecker resolves whether a stored user holds a role.
type RoleChecker interface {
	HasRole(ctx context.Context, email string, role model.Role) bool
}

// RequireAuth validates the Authorization bearer token and attaches the
// decoded claims to the request context. It never touches the store.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("missing authorization header", ""))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("malformed authorization header", ""))
			return
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("unauthorized access", ""))
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// RequireRole gates a route to callers whose stored role matches role.
// Must run after RequireAuth. Fails closed: a missing user record or a
// store error denies access.
func RequireRole(users RoleChecker, role model.Role) gin.HandlerFunc {
	return RequireAnyRole(users, role)
}

// RequireAnyRole gates a route to callers holding any of the given roles.
func RequireAnyRole(users RoleChecker, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := CallerEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("unauthorized access", ""))
			return
		}
		for _, role := range roles {
			if users.HasRole(c.Request.Context(), email, role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, model.NewErrorResponse("forbidden access", ""))
	}
}

// CallerEmail returns the verified caller's email, or "" when unauthenticated.
func CallerEmail(c *gin.Context) string {
	if v, ok := c.Get(ContextEmailKey); ok {
		if s, ok2 := v.(string); ok2 {
			return s
		}
	}
	return ""
}

// CallerClaims returns the verified caller's claims, or nil.
func CallerClaims(c *gin.Context) *service.Claims {
	if v, ok := c.Get(ContextClaimsKey); ok {
		if claims, ok2 := v.(*service.Claims); ok2 {
			return claims
		}
	}
	return nil
}
