package absenceerrors

import (
	"net/http"

	"go-hrapp/internal/shared/apperror"
)

var (
	ErrAbsenceRequestNotFound = apperror.New(
		apperror.CodeAbsenceRequestNotFound,
		"Absence request not found",
		http.StatusNotFound,
	)
	ErrInvalidAbsenceRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid absence request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidDateRange,
		"End date must be on or after start date",
		http.StatusBadRequest,
	)
	ErrInvalidRequestStatus = apperror.New(
		apperror.CodeInvalidRequestStatus,
		"Only pending requests can be approved or rejected",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of PENDING, APPROVED, REJECTED",
		http.StatusBadRequest,
	)
)
