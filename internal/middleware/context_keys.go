package middleware

import (
	"context"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys defined in this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey     = contextKey("logger")
	actingUserKey = contextKey("actingUser")
)

// GetActingUserFromContext retrieves the acting user resolved by
// ActingUserMiddleware. The boolean reports whether one was found.
func GetActingUserFromContext(c *gin.Context) (domain.ActingUser, bool) {
	val, exists := c.Get(string(actingUserKey))
	if !exists {
		// Check the request context as well
		if v := c.Request.Context().Value(actingUserKey); v != nil {
			if actor, ok := v.(domain.ActingUser); ok {
				return actor, true
			}
		}
		return domain.ActingUser{}, false
	}

	actor, ok := val.(domain.ActingUser)
	if !ok {
		return domain.ActingUser{}, false
	}
	return actor, true
}

// withActingUser stores the acting user in both the gin context and the
// request context so services reached through context.Context can see it.
func withActingUser(c *gin.Context, actor domain.ActingUser) {
	c.Set(string(actingUserKey), actor)
	ctx := context.WithValue(c.Request.Context(), actingUserKey, actor)
	c.Request = c.Request.WithContext(ctx)
}
