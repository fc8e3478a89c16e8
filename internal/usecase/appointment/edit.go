package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/barshopapp/barshop-api/internal/audit"
	domain "github.com/barshopapp/barshop-api/internal/domain/appointment"
	"github.com/barshopapp/barshop-api/internal/httperr"
	"github.com/barshopapp/barshop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// EditAppointmentInput carries a partial update: nil fields are left
// untouched. Date and Time may be sent independently; the missing half is
// taken from the current appointment.
type EditAppointmentInput struct {
	CustomerName  *string
	CustomerPhone *string
	Notes         *string

	Date *string // YYYY-MM-DD
	Time *string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type EditAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewEditAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *EditAppointment {
	return &EditAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute updates customer details and, for scheduled appointments,
// reschedules to a new slot. A reschedule runs the same checks as a fresh
// booking: slot conflict, business hours, no past dates, shop closures.
func (uc *EditAppointment) Execute(
	ctx context.Context,
	userID *uint,
	id uuid.UUID,
	in EditAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.CustomerName != nil {
		name := strings.TrimSpace(*in.CustomerName)
		if name == "" {
			return nil, httperr.ErrBusiness("missing_fields")
		}
		ap.CustomerName = name
	}
	if in.CustomerPhone != nil {
		phone := strings.TrimSpace(*in.CustomerPhone)
		if phone == "" {
			return nil, httperr.ErrBusiness("missing_fields")
		}
		ap.CustomerPhone = phone
	}
	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}

	if in.Date != nil || in.Time != nil {
		// terminal appointments keep their historical slot
		if ap.Status != string(domain.StatusScheduled) {
			return nil, httperr.ErrBusiness("invalid_state")
		}

		current := ap.AppointmentDateTime.In(uc.loc)
		dateStr := current.Format("2006-01-02")
		timeStr := current.Format("15:04")
		if in.Date != nil {
			dateStr = *in.Date
		}
		if in.Time != nil {
			timeStr = *in.Time
		}

		start, err := time.ParseInLocation(
			"2006-01-02 15:04",
			dateStr+" "+timeStr,
			uc.loc,
		)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}

		if !start.Equal(ap.AppointmentDateTime) {
			taken, err := uc.repo.HasScheduledAt(ctx, start)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, httperr.ErrBusiness("slot_taken")
			}

			if !domain.IsBookableTime(start) {
				return nil, httperr.ErrBusiness("outside_business_hours")
			}

			if start.Before(time.Now().In(uc.loc)) {
				return nil, httperr.ErrBusiness("past_date")
			}

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

			ap.AppointmentDateTime = start
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
	})

	return ap, nil
}
