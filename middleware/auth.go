package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"garagehub/utils"
)

// JWTAuthMiddleware validates the bearer token and puts the authenticated
// caller id on the context as "userID". Core operations never check
// ownership themselves; handlers pass an already-authorized pair down.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Insufficient authorization"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
