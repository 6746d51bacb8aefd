package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Kinds the absence/profile core raises
	CodeInvalidToken           = "INVALID_TOKEN"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"
	CodeAccessDenied           = "ACCESS_DENIED"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeProfileNotFound        = "PROFILE_NOT_FOUND"
	CodeAbsenceRequestNotFound = "ABSENCE_REQUEST_NOT_FOUND"
	CodeInvalidDateRange       = "INVALID_DATE_RANGE"
	CodeInvalidRequestStatus   = "INVALID_REQUEST_STATUS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
)
