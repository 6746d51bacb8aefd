package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrapp/internal/auth"
	autherrors "go-hrapp/internal/auth/errors"
	authMock "go-hrapp/internal/auth/mock"
	"go-hrapp/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("round trip with current role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		tokens := auth.NewTokenManager(testSecret, time.Hour)
		resolver := auth.NewResolver(tokens, repo)

		token, err := tokens.Issue(userID, "manager@example.com")
		assert.NoError(t, err)

		repo.EXPECT().
			FindByID(ctx, userID).
			Return(&auth.User{ID: userID, Email: "manager@example.com", Role: "MANAGER"}, nil)

		p, err := resolver.Resolve(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, userID, p.ID)
		assert.Equal(t, domain.RoleManager, p.Role)
	})

	t.Run("role change takes effect on the next call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		tokens := auth.NewTokenManager(testSecret, time.Hour)
		resolver := auth.NewResolver(tokens, repo)

		token, _ := tokens.Issue(userID, "a@example.com")

		gomock.InOrder(
			repo.EXPECT().FindByID(ctx, userID).Return(&auth.User{ID: userID, Role: "MANAGER"}, nil),
			repo.EXPECT().FindByID(ctx, userID).Return(&auth.User{ID: userID, Role: "EMPLOYEE"}, nil),
		)

		first, err := resolver.Resolve(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleManager, first.Role)

		second, err := resolver.Resolve(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleEmployee, second.Role)
	})

	t.Run("negative invalid token skips lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		verifier := authMock.NewMockTokenVerifier(ctrl)
		resolver := auth.NewResolver(verifier, repo)

		verifier.EXPECT().Verify("bad").Return(auth.Identity{}, autherrors.ErrInvalidToken)

		_, err := resolver.Resolve(ctx, "bad")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("negative deleted user with valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		verifier := authMock.NewMockTokenVerifier(ctrl)
		resolver := auth.NewResolver(verifier, repo)

		verifier.EXPECT().Verify("tok").Return(auth.Identity{PrincipalID: userID}, nil)
		repo.EXPECT().FindByID(ctx, userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := resolver.Resolve(ctx, "tok")
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("negative store failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		verifier := authMock.NewMockTokenVerifier(ctrl)
		resolver := auth.NewResolver(verifier, repo)

		dbErr := errors.New("connection reset")
		verifier.EXPECT().Verify("tok").Return(auth.Identity{PrincipalID: userID}, nil)
		repo.EXPECT().FindByID(ctx, userID).Return(nil, dbErr)

		_, err := resolver.Resolve(ctx, "tok")
		assert.ErrorIs(t, err, dbErr)
	})
}
