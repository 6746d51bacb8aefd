package auth

import (
	"context"
	"errors"

	autherrors "go-hrapp/internal/auth/errors"
	"go-hrapp/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Resolver turns a bearer token into the calling Principal.
type Resolver struct {
	tokens TokenVerifier
	users  Repository
	logger *zap.Logger
}

func NewResolver(tokens TokenVerifier, users Repository, logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("auth.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.resolver")
	}
	return &Resolver{tokens: tokens, users: users, logger: l}
}

// Resolve verifies the token and re-reads the user so that role changes and
// deletions take effect on the next call. A valid token for a deleted user
// fails with ErrUserNotFound.
func (r *Resolver) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	identity, err := r.tokens.Verify(token)
	if err != nil {
		return domain.Principal{}, err
	}

	user, err := r.users.FindByID(ctx, identity.PrincipalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("token subject no longer exists",
				zap.String("user_id", identity.PrincipalID.String()),
			)
			return domain.Principal{}, autherrors.ErrUserNotFound
		}
		r.logger.Error("resolve principal lookup failed", zap.Error(err))
		return domain.Principal{}, err
	}

	return domain.Principal{
		ID:    user.ID,
		Email: user.Email,
		Role:  domain.ParseRole(user.Role),
	}, nil
}
