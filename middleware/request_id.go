package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the inbound/outbound correlation header.
	RequestIDHeader     = "X-Request-ID"
	contextRequestIDKey = "request_id"
)

// RequestID assigns every request a correlation id, honoring one supplied by
// the caller, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(contextRequestIDKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

// RequestIDFrom returns the request's correlation id, or "".
func RequestIDFrom(c *gin.Context) string {
	rid, _ := c.Get(contextRequestIDKey)
	s, _ := rid.(string)
	return s
}
