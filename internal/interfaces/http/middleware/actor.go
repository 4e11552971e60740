package middleware

import (
	"github.com/gin-gonic/gin"

	"beyazmasa/internal/application/identity"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/utils"
)

// ContextKeyActor is the gin context key the resolved Actor is stored under.
const ContextKeyActor = "actor"

// ResolveActor loads the caller's staff profile and derives the Actor the use
// cases authorize against. Must run after RequireAuth.
func ResolveActor(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextKeyUserID)

		actor, err := resolver.Resolve(c.Request.Context(), userID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextKeyActor, actor)
		c.Next()
	}
}

// ActorFromContext returns the Actor stored by ResolveActor.
func ActorFromContext(c *gin.Context) staff.Actor {
	if v, ok := c.Get(ContextKeyActor); ok {
		if actor, ok := v.(staff.Actor); ok {
			return actor
		}
	}
	return staff.Actor{}
}
