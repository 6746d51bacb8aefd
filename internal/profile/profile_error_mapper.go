package profile

import (
	"errors"
	"strings"

	profileerrors "go-hrapp/internal/profile/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	constraintUserID     = "uq_employee_profiles_user_id"
	constraintEmployeeID = "uq_employee_profiles_employee_id"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profileerrors.ErrProfileNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case constraintUserID:
			return profileerrors.ErrProfileAlreadyExists
		case constraintEmployeeID:
			return profileerrors.ErrEmployeeIDAlreadyExists
		}
	}

	// some drivers only surface the constraint in the message
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, constraintUserID):
			return profileerrors.ErrProfileAlreadyExists
		case strings.Contains(errMsg, constraintEmployeeID):
			return profileerrors.ErrEmployeeIDAlreadyExists
		}
	}

	return err
}
