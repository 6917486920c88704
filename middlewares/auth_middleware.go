package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/apakhome20-stack/efebem/models"
	"github.com/apakhome20-stack/efebem/services"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the session credential once per request and
// stores the authenticated user in the context. The cookie wins; the
// Authorization header is only consulted when no cookie is present.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("session_token")
		if token == "" {
			token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		user, err := auth.Authenticate(token)
		switch {
		case errors.Is(err, services.ErrInvalidSession):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		case errors.Is(err, services.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user the middleware authenticated.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
