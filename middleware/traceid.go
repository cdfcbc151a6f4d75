package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDHeader carries the request trace ID; clients may supply their own.
const TraceIDHeader = "X-Trace-ID"

const traceIDKey = "trace_id"

// TraceID tags each request with a trace ID, generating one when the
// client did not send an X-Trace-ID header, and echoes it back.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(TraceIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(traceIDKey, id)
		c.Writer.Header().Set(TraceIDHeader, id)
		c.Next()
	}
}

// GetTraceID returns the trace ID set by TraceID, or "" outside of it.
func GetTraceID(c *gin.Context) string {
	return c.GetString(traceIDKey)
}
