package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barshopapp/barshop-api/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	HasScheduledAt(
		ctx context.Context,
		at time.Time,
	) (bool, error)

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListScheduledBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change / delete) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Off dates --------
	IsOffDate(
		ctx context.Context,
		dayStart time.Time,
	) (bool, error)
}
