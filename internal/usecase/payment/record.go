package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barshopapp/barshop-api/internal/audit"
	apdomain "github.com/barshopapp/barshop-api/internal/domain/appointment"
	domain "github.com/barshopapp/barshop-api/internal/domain/payment"
	"github.com/barshopapp/barshop-api/internal/httperr"
	"github.com/barshopapp/barshop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RecordPaymentInput struct {
	AppointmentID uuid.UUID
	CustomerType  string
	Method        string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewRecordPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute records the single payment for an appointment. The amount is fully
// determined by the customer type. Customer name, phone and the appointment
// date are snapshotted so the payment stays a valid audit record even if the
// appointment is later changed or deleted.
func (uc *RecordPayment) Execute(
	ctx context.Context,
	userID *uint,
	in RecordPaymentInput,
) (*models.Payment, error) {

	amount, err := domain.AmountFor(domain.CustomerType(in.CustomerType))
	if err != nil {
		return nil, err
	}

	method := in.Method
	if method == "" {
		method = domain.MethodCash
	}
	if !domain.IsValidMethod(method) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Payments only attach to completed appointments.
	if apdomain.Status(ap.Status) != apdomain.StatusCompleted {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if _, err := uc.repo.GetPaymentByAppointment(ctx, ap.ID); err == nil {
		return nil, httperr.ErrBusiness("payment_already_recorded")
	}

	p := &models.Payment{
		AppointmentID:   ap.ID,
		CustomerName:    ap.CustomerName,
		CustomerPhone:   ap.CustomerPhone,
		CustomerType:    in.CustomerType,
		Amount:          amount,
		PaymentDate:     time.Now().In(uc.loc),
		AppointmentDate: ap.AppointmentDateTime,
		PaymentMethod:   method,
		Status:          domain.StatusCompleted,
		Notes:           in.Notes,
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("payment_already_recorded")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: p.ID.String(),
		Metadata: map[string]any{
			"appointment_id": ap.ID.String(),
			"customer_type":  in.CustomerType,
			"amount":         amount,
		},
	})

	return p, nil
}
