package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/barshopapp/barshop-api/internal/domain/payment"
	"github.com/barshopapp/barshop-api/internal/models"
)

var errNotFound = errors.New("record not found")

type fakeRepo struct {
	appointments map[uuid.UUID]*models.Appointment
	payments     map[uuid.UUID]*models.Payment // keyed by appointment id
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uuid.UUID]*models.Appointment),
		payments:     make(map[uuid.UUID]*models.Payment),
	}
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) GetPaymentByAppointment(_ context.Context, appointmentID uuid.UUID) (*models.Payment, error) {
	p, ok := r.payments[appointmentID]
	if !ok {
		return nil, errNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.payments[p.AppointmentID] = &cp
	return nil
}

func (r *fakeRepo) ListPayments(_ context.Context) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

var bucketLayouts = map[string]string{
	"YYYY-MM-DD": "2006-01-02",
	"YYYY-MM":    "2006-01",
	"IYYY-IW":    "2006-01-02", // close enough for tests; buckets just need to be stable
}

func (r *fakeRepo) CollectionsSince(_ context.Context, since time.Time, bucketFormat string) ([]domain.CollectionRow, error) {
	layout := bucketLayouts[bucketFormat]

	grouped := make(map[string]*domain.CollectionRow)
	for _, p := range r.payments {
		if p.Status != domain.StatusCompleted || p.PaymentDate.Before(since) {
			continue
		}
		key := p.PaymentDate.Format(layout) + "|" + p.CustomerType
		row, ok := grouped[key]
		if !ok {
			row = &domain.CollectionRow{
				Date:         p.PaymentDate.Format(layout),
				CustomerType: p.CustomerType,
			}
			grouped[key] = row
		}
		row.Count++
		row.TotalAmount += p.Amount
	}

	var out []domain.CollectionRow
	for _, row := range grouped {
		out = append(out, *row)
	}
	return out, nil
}

func (r *fakeRepo) CollectionTotalsSince(_ context.Context, since time.Time) ([]domain.CollectionTotal, error) {
	grouped := make(map[string]*domain.CollectionTotal)
	for _, p := range r.payments {
		if p.Status != domain.StatusCompleted || p.PaymentDate.Before(since) {
			continue
		}
		total, ok := grouped[p.CustomerType]
		if !ok {
			total = &domain.CollectionTotal{CustomerType: p.CustomerType}
			grouped[p.CustomerType] = total
		}
		total.Count++
		total.TotalAmount += p.Amount
	}

	var out []domain.CollectionTotal
	for _, total := range grouped {
		out = append(out, *total)
	}
	return out, nil
}

// addAppointment seeds an appointment in the given status.
func (r *fakeRepo) addAppointment(status string) *models.Appointment {
	ap := &models.Appointment{
		ID:                  uuid.New(),
		CustomerName:        "John Doe",
		CustomerPhone:       "555-0100",
		AppointmentDateTime: time.Date(2030, 6, 10, 14, 0, 0, 0, time.UTC),
		Status:              status,
	}
	r.appointments[ap.ID] = ap
	return ap
}

var _ domain.Repository = (*fakeRepo)(nil)
