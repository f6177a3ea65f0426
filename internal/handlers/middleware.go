package handlers

import (
	"net/http"
	"restaurant_panel/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionFlagKey  = "authenticated"
	sessionTokenKey = "token"
	contextUserKey  = "user"
)

// RequireSession gates every panel route behind the mock auth flag. The
// cookie flag alone is not trusted: the server-side session mirror must
// still exist.
func RequireSession(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		flag, _ := session.Get(sessionFlagKey).(bool)
		token, _ := session.Get(sessionTokenKey).(string)
		if !flag || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := authService.Session(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}
