package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/gathering-relay/internal/platform/logger"
)

// Recovery turns a panicking ops handler into a 500. The relay keeps
// running; the panic is logged with the session code being queried, if any,
// and recorded on the request span.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			err := fmt.Errorf("ops handler panic: %v", recovered)

			ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
				Code:      c.Param("code"),
				Component: "ops",
			})
			span := trace.SpanFromContext(ctx)
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")

			slog.ErrorContext(ctx, "ops handler panicked",
				"error", err,
				"route", c.FullPath(),
				"stack", string(debug.Stack()),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}()
		c.Next()
	}
}
