package appointment

import (
	"fmt"
	"time"
)

// Business hours: 09:00 inclusive to 19:00 exclusive, 30-minute grid.
// The shop has a single fixed schedule, so the slot sequence is pure and
// recomputed per request.
const (
	OpeningHour   = 9
	ClosingHour   = 19
	SlotMinutes   = 30
	SlotKeyLayout = "15:04"
	DisplayLayout = "3:04 PM"
	SlotsPerDay   = (ClosingHour - OpeningHour) * 60 / SlotMinutes
)

type Slot struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

// DaySlots returns the canonical ordered sequence of bookable start times:
// 09:00, 09:30, ..., 18:30.
func DaySlots() []Slot {
	slots := make([]Slot, 0, SlotsPerDay)

	for hour := OpeningHour; hour < ClosingHour; hour++ {
		for minute := 0; minute < 60; minute += SlotMinutes {
			value := fmt.Sprintf("%02d:%02d", hour, minute)
			display := time.Date(2000, 1, 1, hour, minute, 0, 0, time.UTC).
				Format(DisplayLayout)
			slots = append(slots, Slot{Value: value, Display: display})
		}
	}

	return slots
}

// SlotKey reduces a timestamp to its HH:MM key on the slot grid.
func SlotKey(t time.Time) string {
	return t.Format(SlotKeyLayout)
}

// IsBookableTime reports whether t lands exactly on the slot grid: the local
// hour in [09,19) and the minute exactly 0 or 30.
func IsBookableTime(t time.Time) bool {
	hour := t.Hour()
	minute := t.Minute()

	if hour < OpeningHour || hour >= ClosingHour {
		return false
	}
	return minute == 0 || minute == SlotMinutes
}
