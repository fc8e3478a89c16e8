package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/barshopapp/barshop-api/internal/domain/appointment"
	"github.com/barshopapp/barshop-api/internal/httperr"
)

func newCreateUC(repo *fakeRepo) *CreateBooking {
	return NewCreateBooking(repo, nil, time.UTC)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerName:  "Jane Roe",
		CustomerPhone: "555-0101",
		Date:          "2030-06-10",
		Time:          "14:00",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(domain.StatusScheduled) {
		t.Errorf("status = %q, want scheduled", ap.Status)
	}
	want := time.Date(2030, 6, 10, 14, 0, 0, 0, time.UTC)
	if !ap.AppointmentDateTime.Equal(want) {
		t.Errorf("AppointmentDateTime = %v, want %v", ap.AppointmentDateTime, want)
	}
	if ap.CustomerName != "Jane Roe" || ap.CustomerPhone != "555-0101" {
		t.Errorf("customer fields not carried over: %+v", ap)
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	for _, in := range []CreateBookingInput{
		{CustomerPhone: "555-0101", Date: "2030-06-10", Time: "14:00"},
		{CustomerName: "Jane Roe", Date: "2030-06-10", Time: "14:00"},
		{CustomerName: "Jane Roe", CustomerPhone: "555-0101", Time: "14:00"},
		{CustomerName: "Jane Roe", CustomerPhone: "555-0101", Date: "2030-06-10"},
		{CustomerName: "   ", CustomerPhone: "555-0101", Date: "2030-06-10", Time: "14:00"},
	} {
		if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "missing_fields") {
			t.Errorf("input %+v: got %v, want missing_fields", in, err)
		}
	}
}

func TestCreateBookingInvalidDateTime(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.Date = "2030-13-40"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Errorf("got %v, want invalid_date_or_time", err)
	}

	in = validInput()
	in.Time = "2pm"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Errorf("got %v, want invalid_date_or_time", err)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	existing := repo.addScheduled(time.Date(2030, 6, 10, 14, 0, 0, 0, time.UTC))

	if _, err := uc.Execute(context.Background(), validInput()); !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("got %v, want slot_taken", err)
	}

	// a cancelled appointment no longer blocks the slot
	existing.Status = string(domain.StatusCancelled)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("booking after cancel failed: %v", err)
	}
}

func TestCreateBookingOutsideBusinessHours(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	for _, slot := range []string{"08:30", "19:00", "14:15", "22:00"} {
		in := validInput()
		in.Time = slot
		if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "outside_business_hours") {
			t.Errorf("time %s: got %v, want outside_business_hours", slot, err)
		}
	}

	for _, slot := range []string{"09:00", "14:30", "18:30"} {
		in := validInput()
		in.Time = slot
		if _, err := uc.Execute(context.Background(), in); err != nil {
			t.Errorf("time %s: unexpected error %v", slot, err)
		}
	}
}

func TestCreateBookingInThePast(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.Date = "2020-06-10"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "past_date") {
		t.Errorf("got %v, want past_date", err)
	}
}

func TestCreateBookingOnOffDate(t *testing.T) {
	repo := newFakeRepo()
	repo.offDates["2030-06-10"] = true
	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), validInput()); !httperr.IsBusiness(err, "shop_closed") {
		t.Errorf("got %v, want shop_closed", err)
	}
}
