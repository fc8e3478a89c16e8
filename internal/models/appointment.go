package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null;index" json:"customerName"`
	CustomerPhone string `gorm:"size:20;not null;index" json:"customerPhone"`

	AppointmentDateTime time.Time `gorm:"not null;index" json:"appointmentDateTime"`

	Status string `gorm:"size:20;default:'scheduled';index" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
