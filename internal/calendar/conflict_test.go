package calendar

import (
	"testing"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
)

func day(hour, minute int) time.Time {
	return time.Date(2026, time.March, 4, hour, minute, 0, 0, time.UTC)
}

func booking(id int64, start, end time.Time, sportID *int64, status entity.BookingStatus) entity.Booking {
	return entity.Booking{
		ID:        id,
		VenueID:   1,
		SportID:   sportID,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func sport(id int64) *int64 {
	return &id
}

func TestSlotOverlaps_HalfOpen(t *testing.T) {
	slot := Slot{Start: day(10, 0), End: day(11, 0)}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical", day(10, 0), day(11, 0), true},
		{"contained", day(10, 15), day(10, 45), true},
		{"containing", day(9, 0), day(12, 0), true},
		{"overlap left", day(9, 30), day(10, 30), true},
		{"overlap right", day(10, 30), day(11, 30), true},
		{"touching before", day(9, 0), day(10, 0), false},
		{"touching after", day(11, 0), day(12, 0), false},
		{"disjoint before", day(7, 0), day(8, 0), false},
		{"disjoint after", day(13, 0), day(14, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := slot.Overlaps(tc.start, tc.end); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestFirstConflict_SportFilter(t *testing.T) {
	bookings := []entity.Booking{
		booking(1, day(10, 0), day(11, 0), sport(1), entity.BookingStatusConfirmed),
	}

	// "all sports" matches the tagged booking
	if got := FirstConflict(NewSlot(day(0, 0), 10), bookings, AllSports); got == nil || got.ID != 1 {
		t.Fatalf("expected booking 1 at 10:00 with all sports, got %+v", got)
	}

	// the following hour is free, end boundary excluded
	if got := FirstConflict(NewSlot(day(0, 0), 11), bookings, AllSports); got != nil {
		t.Fatalf("expected no conflict at 11:00, got booking %d", got.ID)
	}

	// a different sport does not see a tagged booking
	if got := FirstConflict(NewSlot(day(0, 0), 10), bookings, 2); got != nil {
		t.Fatalf("expected no conflict for sport 2, got booking %d", got.ID)
	}

	// the matching sport does
	if got := FirstConflict(NewSlot(day(0, 0), 10), bookings, 1); got == nil || got.ID != 1 {
		t.Fatalf("expected booking 1 for sport 1, got %+v", got)
	}
}

func TestFirstConflict_UntaggedBookingIsVenueWide(t *testing.T) {
	bookings := []entity.Booking{
		booking(7, day(14, 0), day(15, 0), nil, entity.BookingStatusBlocked),
	}

	for _, sportID := range []int64{AllSports, 1, 2, 99} {
		got := FirstConflict(NewSlot(day(0, 0), 14), bookings, sportID)
		if got == nil || got.ID != 7 {
			t.Fatalf("untagged booking should conflict for sport filter %d, got %+v", sportID, got)
		}
	}
}

func TestFirstConflict_SkipsCancelled(t *testing.T) {
	bookings := []entity.Booking{
		booking(1, day(10, 0), day(11, 0), nil, entity.BookingStatusCancelled),
		booking(2, day(10, 0), day(11, 0), nil, entity.BookingStatusConfirmed),
	}

	got := FirstConflict(NewSlot(day(0, 0), 10), bookings, AllSports)
	if got == nil || got.ID != 2 {
		t.Fatalf("cancelled booking must not win the conflict, got %+v", got)
	}
}

func TestFirstConflict_Deterministic(t *testing.T) {
	bookings := []entity.Booking{
		booking(1, day(9, 0), day(12, 0), sport(3), entity.BookingStatusConfirmed),
		booking(2, day(10, 0), day(11, 0), sport(3), entity.BookingStatusConfirmed),
	}

	slot := NewSlot(day(0, 0), 10)
	first := FirstConflict(slot, bookings, 3)
	second := FirstConflict(slot, bookings, 3)

	if first == nil || second == nil || first.ID != second.ID {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
	if first.ID != 1 {
		t.Fatalf("expected first listed overlap (booking 1), got %d", first.ID)
	}
}

func TestFirstConflict_EmptyList(t *testing.T) {
	if got := FirstConflict(NewSlot(day(0, 0), 10), nil, AllSports); got != nil {
		t.Fatalf("expected nil on empty booking list, got %+v", got)
	}
}
