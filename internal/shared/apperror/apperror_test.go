package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-hrapp/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its code", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrAccessDenied)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeAccessDenied, got.Code)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("approve: %w", apperror.ErrNotFound)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("foreign errors collapse to internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New(`pq: relation "users" does not exist`))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.Wrap(cause, apperror.CodeConflict, "already exists", http.StatusConflict)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "already exists: boom", err.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeConflict, "x", http.StatusConflict))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		Date   string `validate:"required"`
		Reason string `validate:"max=3"`
	}

	v := validator.New()

	err := apperror.MapValidationError(v.Struct(payload{}))
	assert.Equal(t, apperror.CodeInvalidInput, err.Code)
	assert.Equal(t, "Date is required", err.Message)

	err = apperror.MapValidationError(v.Struct(payload{Date: "x", Reason: "too long"}))
	assert.Equal(t, "Reason is invalid", err.Message)

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", err.Message)
}
