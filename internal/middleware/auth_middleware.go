package middleware

import (
	"context"
	"strings"

	autherrors "go-hrapp/internal/auth/errors"
	"go-hrapp/internal/domain"
	"go-hrapp/internal/shared/contextutil"
	"go-hrapp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// ContextUserIDKey holds the resolved principal id as a string in the gin
	// context for the limiter and idempotency middleware.
	ContextUserIDKey = "user_id"

	accessTokenCookie = "access_token"
)

// PrincipalResolver is satisfied by *auth.Resolver.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (domain.Principal, error)
}

// AuthMiddleware requires "Authorization: Bearer <token>". When no header is
// sent the access_token cookie is used instead. A header without the Bearer
// prefix, or with nothing after it, is a bad request.
func AuthMiddleware(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.AbortWithError(c, autherrors.ErrMissingBearerToken)
			return
		}

		ctx := c.Request.Context()
		p, err := resolver.Resolve(ctx, token)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", p.ID.String()),
			zap.String("role", string(p.Role)),
		)
		ctx = contextutil.WithPrincipal(ctx, p)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextUserIDKey, p.ID.String())

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
			return cookie, true
		}
		return "", false
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}
	return token, true
}
