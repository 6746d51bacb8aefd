package profileerrors

import (
	"net/http"

	"go-hrapp/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeProfileNotFound,
		"Profile not found",
		http.StatusNotFound,
	)
	ErrInvalidProfileID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid profile id",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid hire date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"manager does not exist",
		http.StatusBadRequest,
	)
	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"user already has a profile",
		http.StatusConflict,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee id already in use",
		http.StatusConflict,
	)
)
