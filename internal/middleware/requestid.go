package middleware

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// RequestID tags every request with an X-Request-ID (propagated from the
// caller when present) and writes an access log line with the outcome.
func RequestID(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			reqID := strings.TrimSpace(string(ctx.Request.Header.Peek("X-Request-ID")))
			if reqID == "" {
				reqID = uuid.NewString()
			}
			ctx.Response.Header.Set("X-Request-ID", reqID)

			start := time.Now()
			next(ctx)

			logger.Info("request handled",
				zap.String("request_id", reqID),
				zap.String("method", string(ctx.Method())),
				zap.String("path", string(ctx.Path())),
				zap.Int("status", ctx.Response.StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
		}
	}
}
