package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDCtxKey is the Gin context key used to store the request id.
const requestIDCtxKey = "request_id"

// RequestIDMiddleware tags every request with an id so server-side
// error logs can be correlated with client reports. An inbound
// X-Request-ID is honored; otherwise one is generated.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDCtxKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestID returns the request id from the request context.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDCtxKey)
}
