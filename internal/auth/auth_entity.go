package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a row of the user store. The password hash is only ever compared,
// never returned.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'EMPLOYEE'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
