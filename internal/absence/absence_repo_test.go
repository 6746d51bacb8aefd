package absence_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-hrapp/internal/absence"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupAbsenceRepoTest(t *testing.T) (absence.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return absence.NewRepository(gormDB), mock
}

func TestAbsenceRepository_Transition(t *testing.T) {
	decision := absence.Decision{
		Status:     absence.StatusApproved,
		ApproverID: uuid.New(),
		ApprovedAt: time.Now().UTC(),
		Comments:   "ok",
	}

	t.Run("pending row is updated", func(t *testing.T) {
		repo, mock := setupAbsenceRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "absence_requests" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Transition(context.Background(), uuid.New(), decision)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already decided row is left alone", func(t *testing.T) {
		repo, mock := setupAbsenceRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "absence_requests" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Transition(context.Background(), uuid.New(), decision)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAbsenceRepository_DeletePending(t *testing.T) {
	id, requester := uuid.New(), uuid.New()

	t.Run("owner deletes pending row", func(t *testing.T) {
		repo, mock := setupAbsenceRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "absence_requests" WHERE id = $1 AND requester_id = $2 AND status = $3`)).
			WithArgs(id.String(), requester.String(), "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.DeletePending(context.Background(), id, requester)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing matched", func(t *testing.T) {
		repo, mock := setupAbsenceRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "absence_requests"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.DeletePending(context.Background(), id, requester)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAbsenceRepository_WithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "absence_requests"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.Begin()
	assert.NoError(t, err)

	ok, err := absence.NewRepository(gormDB).WithTx(tx).DeletePending(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
