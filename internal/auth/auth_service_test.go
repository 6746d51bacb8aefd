package auth_test

import (
	"context"
	"testing"
	"time"

	"go-hrapp/internal/auth"
	autherrors "go-hrapp/internal/auth/errors"
	authMock "go-hrapp/internal/auth/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	tokens := auth.NewTokenManager(testSecret, time.Hour)
	service := auth.NewService(mockRepo, tokens)
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	mockUser := &auth.User{
		ID:           uuid.New(),
		Email:        "employee@example.com",
		PasswordHash: string(pw),
		Role:         "employee",
	}

	t.Run("Success Login", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		resp, err := service.Login(ctx, mockUser.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Bearer", resp.Type)
		assert.Equal(t, "EMPLOYEE", resp.User.Role)

		identity, err := tokens.Verify(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, mockUser.ID, identity.PrincipalID)
		assert.Equal(t, mockUser.Email, identity.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		_, err := service.Login(ctx, mockUser.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(ctx, "ghost@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Token Issue Failure", func(t *testing.T) {
		issuer := authMock.NewMockTokenIssuer(ctrl)
		svc := auth.NewService(mockRepo, issuer)

		mockRepo.EXPECT().
			FindByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)
		issuer.EXPECT().
			Issue(mockUser.ID, mockUser.Email).
			Return("", autherrors.ErrTokenGenerationFailed)

		_, err := svc.Login(ctx, mockUser.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrTokenGenerationFailed)
	})
}
