package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/shared/response"
	"labsite-backend/pkg/jwt"
)

// ContextKeyUsername is where the authenticated admin username lands in
// the gin context.
const ContextKeyUsername = "adminUsername"

// Auth guards mutating routes: a request without a valid bearer token
// never reaches a handler.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.VerifyToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}
