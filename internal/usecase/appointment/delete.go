package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barshopapp/barshop-api/internal/audit"
	domain "github.com/barshopapp/barshop-api/internal/domain/appointment"
	"github.com/barshopapp/barshop-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment permanently. Payment records are kept on
// purpose: they are audit snapshots and survive appointment deletion.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID *uint,
	id uuid.UUID,
) error {

	if _, err := uc.repo.GetAppointmentByID(ctx, id); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id.String(),
	})

	return nil
}
