package app

import (
	"go-hrapp/internal/absence"
	"go-hrapp/internal/auth"
	"go-hrapp/internal/profile"
	"go-hrapp/internal/shared/counter"

	"gorm.io/gorm"
)

const createOutboxTable = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id             UUID PRIMARY KEY,
	request_id     VARCHAR(64),
	aggregate_type VARCHAR(50)  NOT NULL,
	aggregate_id   UUID         NOT NULL,
	event_type     VARCHAR(100) NOT NULL,
	topic          VARCHAR(200) NOT NULL,
	payload        JSONB        NOT NULL,
	status         VARCHAR(20)  NOT NULL DEFAULT 'pending',
	retry_count    INT          NOT NULL DEFAULT 0,
	error_message  TEXT,
	next_retry_at  TIMESTAMPTZ,
	processed_at   TIMESTAMPTZ,
	created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created ON outbox_events (status, created_at);
`

// migrate creates the schema for local development. Production schemas are
// managed outside the service.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&auth.User{},
		&profile.EmployeeProfile{},
		&absence.AbsenceRequest{},
	); err != nil {
		return err
	}
	if err := db.Exec(counter.CreateTableSQL).Error; err != nil {
		return err
	}
	return db.Exec(createOutboxTable).Error
}
