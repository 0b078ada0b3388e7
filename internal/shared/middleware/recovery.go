package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"labsite-backend/internal/shared/response"
)

// Recovery converts a handler panic into a 500 inside the standard
// error envelope instead of tearing down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.ErrorResponse(c, http.StatusInternalServerError,
					"INTERNAL_ERROR", "Internal server error", nil)
				c.Abort()
			}
		}()

		c.Next()
	}
}
