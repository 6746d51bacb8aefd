package events

import "time"

const AbsenceLifecycleTopic = "hr.absence.lifecycle.v1"

const (
	AbsenceRequested = "absence_requested"
	AbsenceApproved  = "absence_approved"
	AbsenceRejected  = "absence_rejected"
	AbsenceWithdrawn = "absence_withdrawn"
)

// AbsenceLifecycleEvent is published once per committed state change of an
// absence request. ActorID is the requester for requested/withdrawn and the
// deciding manager for approved/rejected.
type AbsenceLifecycleEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	AbsenceID   string    `json:"absence_id"`
	RequesterID string    `json:"requester_id"`
	ActorID     string    `json:"actor_id"`
	Status      string    `json:"status"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Comments    string    `json:"comments,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
