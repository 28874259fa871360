package middleware

import (
	"net/http"
	"strings"

	"tidybook/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware verifies the quote-session token issued at wizard
// initiation and checks it matches the session id in the path, so one
// customer cannot mutate another's in-flight quote.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, err := utils.ExtractSessionIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}
		if pathID := c.Param("sessionID"); pathID != "" && pathID != sessionID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Session token does not match this session"})
			return
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
