package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's one when
// present, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, id)
		}
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func accessLogFormat(p gin.LogFormatterParams) string {
	return fmt.Sprintf("[bookshelf] %s | %3d | %13v | %15s | %-7s %s | %s\n",
		p.TimeStamp.Format(time.RFC3339),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		p.Path,
		p.Request.Header.Get(RequestIDHeader),
	)
}
