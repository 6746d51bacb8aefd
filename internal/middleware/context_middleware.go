package middleware

import (
	"time"

	"go-hrapp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger to the request context and
// writes one access line when the request completes. It must run after
// RequestID. AuthMiddleware later adds the user id to the same logger.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("http")

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()

		reqLogger := logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		// the handler chain may have replaced the logger with a user-scoped one
		l := contextutil.GetLogger(c.Request.Context(), reqLogger)
		switch {
		case c.Writer.Status() >= 500:
			l.Error("request completed", fields...)
		case c.Writer.Status() >= 400:
			l.Warn("request completed", fields...)
		default:
			l.Info("request completed", fields...)
		}
	}
}
