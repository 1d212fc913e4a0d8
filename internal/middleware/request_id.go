package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Trace IDs tie the trace_id field of an error payload to the server log
// line carrying the stack context for it.
const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"
)

// RequestID assigns a trace ID to every request. A caller-supplied
// X-Trace-ID header is honored so clients can correlate retries; otherwise
// a fresh UUID is minted. The ID is stored on the context for handlers and
// echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID stored by RequestID, or "" when the
// middleware has not run for this context.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
