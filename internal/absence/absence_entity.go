package absence

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ParseStatus accepts any letter case. ok is false for unknown values.
func ParseStatus(v string) (Status, bool) {
	switch s := Status(strings.ToUpper(strings.TrimSpace(v))); s {
	case StatusPending, StatusApproved, StatusRejected:
		return s, true
	default:
		return "", false
	}
}

// AbsenceRequest dates are immutable once created. ApproverID, ApprovedAt
// and Comments are written together by the single PENDING -> terminal
// transition and stay nil while pending.
type AbsenceRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index:idx_absence_requests_requester_status"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Reason      string    `gorm:"type:text"`

	Status     Status     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_absence_requests_requester_status;index:idx_absence_requests_status"`
	ApproverID *uuid.UUID `gorm:"type:uuid;index:idx_absence_requests_approver"`
	ApprovedAt *time.Time
	Comments   *string `gorm:"type:text"`

	RequestedAt time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

func (AbsenceRequest) TableName() string {
	return "absence_requests"
}

// Decision is the write set of a transition.
type Decision struct {
	Status     Status
	ApproverID uuid.UUID
	ApprovedAt time.Time
	Comments   string
}
