package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-hrapp/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "0b7c3a2e-3f53-4a43-a7f5-9f0d1d0c2b11",
		RequestID:     "req-1",
		AggregateType: "absence_request",
		AggregateID:   "9a1f7e0c-1b8e-4b0a-9d35-0c5f3b7d9e22",
		EventType:     "absence_requested",
		Topic:         "hr.absence.lifecycle.v1",
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *kafka.OutboxEvent)
		wantErr string
	}{
		{name: "valid", mutate: func(e *kafka.OutboxEvent) {}},
		{name: "missing id", mutate: func(e *kafka.OutboxEvent) { e.ID = "" }, wantErr: "outbox id is required"},
		{name: "missing aggregate", mutate: func(e *kafka.OutboxEvent) { e.AggregateID = "" }, wantErr: "outbox aggregate id is required"},
		{name: "missing topic", mutate: func(e *kafka.OutboxEvent) { e.Topic = "" }, wantErr: "outbox topic is required"},
		{name: "missing payload", mutate: func(e *kafka.OutboxEvent) { e.Payload = nil }, wantErr: "outbox payload is required"},
		{name: "bad status", mutate: func(e *kafka.OutboxEvent) { e.Status = "queued" }, wantErr: "invalid outbox status: queued"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			err := kafka.ValidateOutboxEvent(e)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create inside a transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		e := validEvent()
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
			WithArgs(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)
		assert.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(ctx, e))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create rejects invalid events without touching the db", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		e := validEvent()
		e.Topic = ""
		assert.Error(t, kafka.NewOutboxRepository(db).Create(ctx, e))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list pending", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		e := validEvent()
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
			"topic", "payload", "status", "retry_count", "next_retry_at",
		}).AddRow(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType,
			e.Topic, e.Payload, e.Status, 2, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10, 50).
			WillReturnRows(rows)

		list, err := kafka.NewOutboxRepository(db).ListPending(ctx, 50)
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, e.AggregateID, list[0].AggregateID)
		assert.Equal(t, 2, list[0].RetryCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mark sent and failed", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
			WithArgs("o-1", kafka.OutboxStatusSent).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
			WithArgs("o-2", kafka.OutboxStatusFailed, "boom").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := kafka.NewOutboxRepository(db)
		assert.NoError(t, repo.MarkSent(ctx, "o-1"))
		assert.NoError(t, repo.MarkFailed(ctx, "o-2", "boom"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
