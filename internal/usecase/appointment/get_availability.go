package appointment

import (
	"context"
	"time"

	domain "github.com/barshopapp/barshop-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute partitions the canonical slot sequence for one calendar day into
// available and booked. day must be midnight in the shop timezone. Only
// scheduled appointments occupy slots; cancelled and completed ones free
// their slot immediately.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	day time.Time,
) (*domain.Availability, error) {

	dayStart := time.Date(
		day.Year(), day.Month(), day.Day(),
		0, 0, 0, 0,
		day.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	scheduled, err := uc.repo.ListScheduledBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	booked := make([]string, 0, len(scheduled))
	bookedSet := make(map[string]struct{}, len(scheduled))
	for _, ap := range scheduled {
		key := domain.SlotKey(ap.AppointmentDateTime.In(day.Location()))
		booked = append(booked, key)
		bookedSet[key] = struct{}{}
	}

	all := domain.DaySlots()

	closed, err := uc.repo.IsOffDate(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	available := make([]domain.Slot, 0, len(all))
	if !closed {
		for _, slot := range all {
			if _, taken := bookedSet[slot.Value]; !taken {
				available = append(available, slot)
			}
		}
	}

	return &domain.Availability{
		Date:       dayStart.Format("2006-01-02"),
		Available:  available,
		Booked:     booked,
		TotalSlots: len(all),
	}, nil
}
