package appointment

import "github.com/barshopapp/barshop-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// Completed and cancelled are terminal: an appointment is never resurrected
// back to scheduled.

func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
