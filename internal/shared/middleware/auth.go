package middleware

import (
	"strings"

	"blog-backend/internal/shared/auth"
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// bearerToken extracts the credential from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// OptionalAuth resolves the session credential into the context when one
// is present. Anonymous requests pass through untouched; handlers that
// care about identity check ActorFromContext.
func OptionalAuth(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := resolver.Resolve(bearerToken(c)); actor != nil {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless the credential resolves to an actor.
func RequireAuth(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolver.RequireActor(bearerToken(c))
		if err != nil {
			response.Unauthorized(c, "missing or invalid credentials")
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the resolved actor, or nil for anonymous.
func ActorFromContext(c *gin.Context) *auth.Actor {
	v, exists := c.Get(actorKey)
	if !exists {
		return nil
	}
	actor, ok := v.(*auth.Actor)
	if !ok {
		return nil
	}
	return actor
}
