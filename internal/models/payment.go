package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is an audit snapshot: customer name, phone and appointment date are
// copied from the appointment at payment time so the record stays accurate
// even if the appointment is later edited or deleted. There is deliberately
// no foreign-key cascade.
type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointmentId"`

	CustomerName  string `gorm:"size:100;not null" json:"customerName"`
	CustomerPhone string `gorm:"size:20;not null;index" json:"customerPhone"`

	CustomerType string  `gorm:"size:20;not null;index" json:"customerType"`
	Amount       float64 `gorm:"not null" json:"amount"`

	PaymentDate     time.Time `gorm:"not null;index" json:"paymentDate"`
	AppointmentDate time.Time `gorm:"not null" json:"appointmentDate"`

	PaymentMethod string `gorm:"size:20;default:'cash'" json:"paymentMethod"`
	Status        string `gorm:"size:20;default:'completed'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
