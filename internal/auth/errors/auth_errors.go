package autherrors

import (
	"net/http"

	"go-hrapp/internal/shared/apperror"
)

var (
	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)
	ErrMissingBearerToken = apperror.New(
		apperror.CodeInvalidInput,
		"Authorization header must use the Bearer scheme",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeUserNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredentials,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
