package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barshopapp/barshop-api/internal/models"
)

// CollectionRow is one bucket of the collections report: payments grouped by
// date bucket and customer type.
type CollectionRow struct {
	Date         string  `json:"date"`
	CustomerType string  `json:"customerType"`
	Count        int     `json:"count"`
	TotalAmount  float64 `json:"totalAmount"`
}

// CollectionTotal is the per-customer-type rollup over the whole period.
type CollectionTotal struct {
	CustomerType string  `json:"customerType"`
	Count        int     `json:"count"`
	TotalAmount  float64 `json:"totalAmount"`
}

type Repository interface {
	GetAppointmentByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	GetPaymentByAppointment(
		ctx context.Context,
		appointmentID uuid.UUID,
	) (*models.Payment, error)

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	ListPayments(
		ctx context.Context,
	) ([]models.Payment, error)

	// -------- Reporting --------
	CollectionsSince(
		ctx context.Context,
		since time.Time,
		bucketFormat string,
	) ([]CollectionRow, error)

	CollectionTotalsSince(
		ctx context.Context,
		since time.Time,
	) ([]CollectionTotal, error)
}
