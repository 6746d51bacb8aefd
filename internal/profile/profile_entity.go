package profile

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeProfile belongs to exactly one user. ManagerID is a weak
// reference to another user; deleting that user does not cascade.
type EmployeeProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_profiles_user_id"`
	EmployeeID string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_employee_profiles_employee_id"`

	FirstName  string     `gorm:"type:varchar(100);not null"`
	LastName   string     `gorm:"type:varchar(100);not null"`
	Department string     `gorm:"type:varchar(100)"`
	Position   string     `gorm:"type:varchar(100)"`
	HireDate   *time.Time `gorm:"type:date"`

	Phone                 string `gorm:"type:varchar(30)"`
	Address               string `gorm:"type:text"`
	EmergencyContactName  string `gorm:"type:varchar(100)"`
	EmergencyContactPhone string `gorm:"type:varchar(30)"`

	ManagerID *uuid.UUID `gorm:"type:uuid;index:idx_employee_profiles_manager_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}

func (p EmployeeProfile) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
