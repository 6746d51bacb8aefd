package auth

import (
	"context"
	"errors"

	autherrors "go-hrapp/internal/auth/errors"
	"go-hrapp/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
}

type TokenIssuer interface {
	Issue(principalID uuid.UUID, email string) (string, error)
}

type service struct {
	repo   Repository
	tokens TokenIssuer
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

// Login checks the password and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login user lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("user_id", user.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("login token issue failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))
	return LoginResponse{
		Token: token,
		Type:  "Bearer",
		User: AuthResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Role:  string(domain.ParseRole(user.Role)),
		},
	}, nil
}
