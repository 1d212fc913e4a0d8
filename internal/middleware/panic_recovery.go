package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"expensetracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panicking handler into a SYSTEM_001 response.
// The stack goes to the log under the request's trace ID; the client only
// ever sees the generic internal-error body.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					writePanicResponse(c, r)
				}
			}()
			return next(c)
		}
	}
}

func writePanicResponse(c echo.Context, recovered interface{}) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("handler panicked",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"panic", recovered,
		"stack", string(debug.Stack()),
	)

	response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, response); err != nil {
		slog.Error("could not write panic response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
