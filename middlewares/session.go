package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware resolves the guest identity for cart routes. Browsers
// send the token they were handed in X-Session-Token; first-time visitors
// get a fresh one, echoed back on the response so the client can keep it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			token = uuid.NewString()
		}
		c.Set("sessionToken", token)
		c.Header("X-Session-Token", token)
		c.Next()
	}
}
