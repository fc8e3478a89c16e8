package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/barshopapp/barshop-api/internal/domain/appointment"
	"github.com/barshopapp/barshop-api/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory domain.Repository for use-case tests.
type fakeRepo struct {
	appointments map[uuid.UUID]*models.Appointment
	offDates     map[string]bool // keyed by YYYY-MM-DD
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uuid.UUID]*models.Appointment),
		offDates:     make(map[string]bool),
	}
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) HasScheduledAt(_ context.Context, at time.Time) (bool, error) {
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusScheduled) && ap.AppointmentDateTime.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListScheduledBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Status != string(domain.StatusScheduled) {
			continue
		}
		at := ap.AppointmentDateTime
		if !at.Before(start) && at.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return errNotFound
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) IsOffDate(_ context.Context, dayStart time.Time) (bool, error) {
	return r.offDates[dayStart.Format("2006-01-02")], nil
}

// addScheduled seeds a scheduled appointment at the given instant.
func (r *fakeRepo) addScheduled(at time.Time) *models.Appointment {
	ap := &models.Appointment{
		ID:                  uuid.New(),
		CustomerName:        "John Doe",
		CustomerPhone:       "555-0100",
		AppointmentDateTime: at,
		Status:              string(domain.StatusScheduled),
	}
	r.appointments[ap.ID] = ap
	return ap
}

var _ domain.Repository = (*fakeRepo)(nil)
