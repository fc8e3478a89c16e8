package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barshopapp/barshop-api/internal/audit"
	domain "github.com/barshopapp/barshop-api/internal/domain/appointment"
	"github.com/barshopapp/barshop-api/internal/httperr"
	"github.com/barshopapp/barshop-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	userID *uint,
	id uuid.UUID,
	newStatus string,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := time.Now().In(uc.loc)

	switch domain.Status(newStatus) {
	case domain.StatusCompleted:
		if err := domain.Complete(ap, now); err != nil {
			return nil, err
		}
	case domain.StatusCancelled:
		if err := domain.Cancel(ap, now); err != nil {
			return nil, err
		}
	default:
		// scheduled is the initial status only; terminal appointments are
		// never resurrected
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_" + newStatus,
		Entity:   "appointment",
		EntityID: ap.ID.String(),
	})

	return ap, nil
}
