package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/barshopapp/barshop-api/internal/domain/payment"
	"github.com/barshopapp/barshop-api/internal/httperr"
)

func newRecordUC(repo *fakeRepo) *RecordPayment {
	return NewRecordPayment(repo, nil, time.UTC)
}

func TestRecordPaymentStudent(t *testing.T) {
	repo := newFakeRepo()
	uc := newRecordUC(repo)

	ap := repo.addAppointment("completed")

	p, err := uc.Execute(context.Background(), nil, RecordPaymentInput{
		AppointmentID: ap.ID,
		CustomerType:  "student",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Amount != 10 {
		t.Errorf("amount = %v, want 10", p.Amount)
	}
	if p.PaymentMethod != domain.MethodCash {
		t.Errorf("method = %q, want cash (default)", p.PaymentMethod)
	}
	if p.Status != domain.StatusCompleted {
		t.Errorf("status = %q, want completed", p.Status)
	}

	// snapshot fields copied from the appointment
	if p.CustomerName != ap.CustomerName || p.CustomerPhone != ap.CustomerPhone {
		t.Errorf("customer snapshot missing: %+v", p)
	}
	if !p.AppointmentDate.Equal(ap.AppointmentDateTime) {
		t.Errorf("appointment date snapshot = %v, want %v", p.AppointmentDate, ap.AppointmentDateTime)
	}
}

func TestRecordPaymentProfessional(t *testing.T) {
	repo := newFakeRepo()
	uc := newRecordUC(repo)

	ap := repo.addAppointment("completed")

	p, err := uc.Execute(context.Background(), nil, RecordPaymentInput{
		AppointmentID: ap.ID,
		CustomerType:  "professional",
		Method:        "card",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Amount != 15 {
		t.Errorf("amount = %v, want 15", p.Amount)
	}
	if p.PaymentMethod != domain.MethodCard {
		t.Errorf("method = %q, want card", p.PaymentMethod)
	}
}

func TestRecordPaymentInvalidCustomerType(t *testing.T) {
	repo := newFakeRepo()
	uc := newRecordUC(repo)

	ap := repo.addAppointment("completed")

	_, err := uc.Execute(context.Background(), nil, RecordPaymentInput{
		AppointmentID: ap.ID,
		CustomerType:  "vip",
	})
	if !httperr.IsBusiness(err, "invalid_customer_type") {
		t.Errorf("got %v, want invalid_customer_type", err)
	}
}

func TestRecordPaymentAppointmentNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := newRecordUC(repo)

	_, err := uc.Execute(context.Background(), nil, RecordPaymentInput{
		AppointmentID: uuid.New(),
		CustomerType:  "student",
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("got %v, want appointment_not_found", err)
	}
}

func TestRecordPaymentRequiresCompletedAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := newRecordUC(repo)

	for _, status := range []string{"scheduled", "cancelled"} {
		ap := repo.addAppointment(status)
		_, err := uc.Execute(context.Background(), nil, RecordPaymentInput{
			AppointmentID: ap.ID,
			CustomerType:  "student",
		})
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("status %s: got %v, want invalid_state", status, err)
		}
	}
}

func TestRecordPaymentExactlyOnce(t *testing.T) {
	repo := newFakeRepo()
	uc := newRecordUC(repo)

	ap := repo.addAppointment("completed")

	if _, err := uc.Execute(context.Background(), nil, RecordPaymentInput{
		AppointmentID: ap.ID,
		CustomerType:  "student",
	}); err != nil {
		t.Fatalf("first payment: %v", err)
	}

	_, err := uc.Execute(context.Background(), nil, RecordPaymentInput{
		AppointmentID: ap.ID,
		CustomerType:  "professional",
	})
	if !httperr.IsBusiness(err, "payment_already_recorded") {
		t.Errorf("got %v, want payment_already_recorded", err)
	}
}

func TestStatusMap(t *testing.T) {
	repo := newFakeRepo()
	recordUC := newRecordUC(repo)
	statusUC := NewGetStatusMap(repo)

	ap := repo.addAppointment("completed")
	other := repo.addAppointment("completed")

	if _, err := recordUC.Execute(context.Background(), nil, RecordPaymentInput{
		AppointmentID: ap.ID,
		CustomerType:  "student",
	}); err != nil {
		t.Fatalf("setup: %v", err)
	}

	m, err := statusUC.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, ok := m[ap.ID.String()]
	if !ok {
		t.Fatalf("paid appointment missing from status map")
	}
	if entry.CustomerType != "student" || entry.Amount != 10 || entry.PaymentStatus != "paid" {
		t.Errorf("unexpected entry: %+v", entry)
	}

	if _, ok := m[other.ID.String()]; ok {
		t.Errorf("unpaid appointment present in status map")
	}
}

func TestCollectionsReportDaily(t *testing.T) {
	repo := newFakeRepo()
	recordUC := newRecordUC(repo)
	reportUC := NewCollectionsReport(repo, time.UTC)

	for _, ct := range []string{"student", "student", "professional"} {
		ap := repo.addAppointment("completed")
		if _, err := recordUC.Execute(context.Background(), nil, RecordPaymentInput{
			AppointmentID: ap.ID,
			CustomerType:  ct,
		}); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	result, err := reportUC.Execute(context.Background(), "daily")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Period != "daily" {
		t.Errorf("period = %q, want daily", result.Period)
	}
	if result.Summary.TotalAppointments != 3 {
		t.Errorf("TotalAppointments = %d, want 3", result.Summary.TotalAppointments)
	}
	if result.Summary.TotalCollections != 35 {
		t.Errorf("TotalCollections = %v, want 35 (10+10+15)", result.Summary.TotalCollections)
	}
}

func TestCollectionsReportUnknownPeriodFallsBackToDaily(t *testing.T) {
	repo := newFakeRepo()
	reportUC := NewCollectionsReport(repo, time.UTC)

	result, err := reportUC.Execute(context.Background(), "yearly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Period != "daily" {
		t.Errorf("period = %q, want daily", result.Period)
	}
}
