package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID is the context key holding the request correlation id.
const CtxRequestID = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID assigns every request a correlation id, honoring one supplied by
// the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
