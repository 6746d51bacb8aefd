package counter

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const CreateTableSQL = `
CREATE TABLE IF NOT EXISTS sequence_counters (
	name       VARCHAR(50) PRIMARY KEY,
	last_value BIGINT      NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	NextValue(ctx context.Context, name string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// NextValue increments the named sequence and returns the new value. The
// upsert makes concurrent callers receive distinct values.
func (r *repository) NextValue(ctx context.Context, name string) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (name, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (name) DO UPDATE
		SET last_value = sequence_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, name).Scan(&nextValue).Error
	if err != nil {
		return 0, fmt.Errorf("next value for %s: %w", name, err)
	}

	return nextValue, nil
}
