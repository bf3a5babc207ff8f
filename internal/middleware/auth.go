package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rsmedika/hospital-api/internal/token"
)

const (
	ContextUserID  = "userID"
	ContextTokenID = "tokenID"
)

func AuthMiddleware(tm *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"message": "Unauthenticated."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(401, gin.H{"message": "Unauthenticated."})
			return
		}

		userID, jti, err := tm.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"message": "Unauthenticated."})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextTokenID, jti)

		c.Next()
	}
}
