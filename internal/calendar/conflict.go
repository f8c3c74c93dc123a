// Package calendar holds the pure slot math behind the venue calendar
// view: grid construction and conflict detection. Nothing here touches
// the network or mutates its inputs; the authoritative overlap check
// still lives upstream, this one only drives what the operator sees.
package calendar

import (
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
)

// AllSports matches every booking regardless of sport tag.
const AllSports int64 = 0

// SlotDuration is the fixed granularity of a calendar cell.
const SlotDuration = time.Hour

// Slot is a half-open candidate interval [Start, End).
type Slot struct {
	Start time.Time
	End   time.Time
}

// NewSlot builds the one-hour slot starting at the given hour of day.
func NewSlot(day time.Time, hour int) Slot {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	return Slot{Start: start, End: start.Add(SlotDuration)}
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not count: [10,11) and [11,12) are free of each other.
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && start.Before(s.End)
}

// FirstConflict returns the first non-cancelled booking occupying the
// slot, or nil. A sportID of AllSports matches every booking; a specific
// sport matches bookings tagged with it plus untagged (venue-wide) ones.
// Same inputs always yield the same result.
func FirstConflict(slot Slot, bookings []entity.Booking, sportID int64) *entity.Booking {
	for i := range bookings {
		booking := &bookings[i]

		if booking.Status == entity.BookingStatusCancelled {
			continue
		}

		if !matchesSport(booking, sportID) {
			continue
		}

		if slot.Overlaps(booking.StartTime, booking.EndTime) {
			return booking
		}
	}

	return nil
}

func matchesSport(booking *entity.Booking, sportID int64) bool {
	if sportID == AllSports {
		return true
	}

	// nil sport means the booking occupies the whole venue
	if booking.SportID == nil {
		return true
	}

	return *booking.SportID == sportID
}
