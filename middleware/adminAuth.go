package middleware

import (
	"net/http"
	"strings"

	"tidybook/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthMiddleware guards catalog admin endpoints. The presented key is
// compared against the bcrypt hash in config; no plaintext key is stored.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		key := strings.TrimPrefix(authHeader, "Bearer ")

		hash := config.AppConfig.AdminKeyHash
		if hash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access is not configured"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
