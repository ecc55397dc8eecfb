package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/editorialops/edit_tracking_app/internal/apperrors"
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// actingUserHeader names the header carrying the acting user's ID.
// Identity enters every request explicitly; the application keeps no
// session state. Authentication in front of this service is a deployment
// concern (reverse proxy, gateway).
const actingUserHeader = "X-User-ID"

// ActingUserMiddleware resolves the acting user from the request header and
// stores it in the context for handlers and services.
func ActingUserMiddleware(userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(actingUserHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing " + actingUserHeader + " header"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown acting user"})
				return
			}
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to resolve acting user", slog.String("user_id", userID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve acting user"})
			return
		}

		withActingUser(c, domain.ActingUser{UserID: user.UserID, Role: user.Role})
		c.Next()
	}
}
