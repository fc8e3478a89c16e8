package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/barshopapp/barshop-api/internal/audit"
	domain "github.com/barshopapp/barshop-api/internal/domain/appointment"
	"github.com/barshopapp/barshop-api/internal/httperr"
	"github.com/barshopapp/barshop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerPhone string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// 1. Required fields
	name := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.CustomerPhone)
	if name == "" || phone == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	// 2. Date/time in the shop timezone
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// 3. Exact-slot conflict among scheduled appointments. The partial
	// unique index is the authoritative guard; this check gives the
	// friendly message first.
	taken, err := uc.repo.HasScheduledAt(ctx, start)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// 4. Business hours and 30-minute granularity
	if !domain.IsBookableTime(start) {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	// 5. No bookings in the past
	now := time.Now().In(uc.loc)
	if start.Before(now) {
		return nil, httperr.ErrBusiness("past_date")
	}

	// 6. Shop closure days
	dayStart := time.Date(
		start.Year(), start.Month(), start.Day(),
		0, 0, 0, 0,
		uc.loc,
	)
	closed, err := uc.repo.IsOffDate(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, httperr.ErrBusiness("shop_closed")
	}

	ap := &models.Appointment{
		CustomerName:        name,
		CustomerPhone:       phone,
		AppointmentDateTime: start,
		Status:              string(domain.InitialStatus()),
		Notes:               strings.TrimSpace(in.Notes),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: map[string]any{"start": start},
	})

	return ap, nil
}
