package appointment

import (
	"time"

	"github.com/barshopapp/barshop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Availability is the partition of the canonical slot sequence for one
// calendar day.
type Availability struct {
	Date       string   `json:"date"`
	Available  []Slot   `json:"availableSlots"`
	Booked     []string `json:"bookedSlots"`
	TotalSlots int      `json:"totalSlots"`
}
