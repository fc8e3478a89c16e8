package payment

import (
	"testing"
	"time"
)

func TestPeriodWindowWeeklyStartsOnISOMonday(t *testing.T) {
	// a Sunday belongs to the ISO week that began the previous Monday
	now := time.Date(2030, 6, 10, 12, 0, 0, 0, time.UTC)
	for now.Weekday() != time.Sunday {
		now = now.AddDate(0, 0, 1)
	}

	since, bucket, period := periodWindow(now, "weekly", time.UTC)

	if period != "weekly" || bucket != "IYYY-IW" {
		t.Fatalf("period = %q, bucket = %q", period, bucket)
	}
	if since.Weekday() != time.Monday {
		t.Errorf("window starts on %v, want Monday", since.Weekday())
	}
	if since.After(now) {
		t.Errorf("window start %v is after now %v", since, now)
	}

	ny, nw := now.ISOWeek()
	sy, sw := since.ISOWeek()
	if ny != sy || nw != sw {
		t.Errorf("window start in ISO week %d-W%d, now in %d-W%d; labels would disagree",
			sy, sw, ny, nw)
	}
}

func TestPeriodWindowWeeklyOnMonday(t *testing.T) {
	now := time.Date(2030, 6, 10, 12, 0, 0, 0, time.UTC)
	for now.Weekday() != time.Monday {
		now = now.AddDate(0, 0, 1)
	}

	since, _, _ := periodWindow(now, "weekly", time.UTC)

	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !since.Equal(want) {
		t.Errorf("window start = %v, want same-day midnight %v", since, want)
	}
}

func TestPeriodWindowMonthly(t *testing.T) {
	now := time.Date(2030, 6, 17, 12, 0, 0, 0, time.UTC)

	since, bucket, period := periodWindow(now, "monthly", time.UTC)

	if period != "monthly" || bucket != "YYYY-MM" {
		t.Fatalf("period = %q, bucket = %q", period, bucket)
	}
	want := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	if !since.Equal(want) {
		t.Errorf("window start = %v, want %v", since, want)
	}
}

func TestPeriodWindowUnknownFallsBackToDaily(t *testing.T) {
	now := time.Date(2030, 6, 17, 12, 0, 0, 0, time.UTC)

	since, bucket, period := periodWindow(now, "yearly", time.UTC)

	if period != "daily" || bucket != "YYYY-MM-DD" {
		t.Fatalf("period = %q, bucket = %q", period, bucket)
	}
	want := time.Date(2030, 6, 17, 0, 0, 0, 0, time.UTC)
	if !since.Equal(want) {
		t.Errorf("window start = %v, want %v", since, want)
	}
}
