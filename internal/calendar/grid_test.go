package calendar

import (
	"testing"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
)

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart_AllWeekdays(t *testing.T) {
	// 2026-03-02 is a Monday
	monday := date(2026, time.March, 2)

	for offset := 0; offset < 7; offset++ {
		input := monday.AddDate(0, 0, offset)
		got := WeekStart(input)

		if !got.Equal(monday) {
			t.Fatalf("WeekStart(%s %v) = %v, want %v", input.Weekday(), input, got, monday)
		}
		if got.After(input) {
			t.Fatalf("week start %v is after input %v", got, input)
		}
		if input.Sub(got) >= 7*24*time.Hour {
			t.Fatalf("week start %v more than 6 days before %v", got, input)
		}
	}
}

func TestWeekStart_SundayRollsBackSixDays(t *testing.T) {
	sunday := date(2026, time.March, 8)
	got := WeekStart(sunday)

	want := date(2026, time.March, 2)
	if !got.Equal(want) {
		t.Fatalf("WeekStart(Sunday %v) = %v, want %v (rolled back 6 days, not forward 1)", sunday, got, want)
	}
}

func TestWeekStart_MondayIsFixpoint(t *testing.T) {
	monday := date(2026, time.March, 2)
	if got := WeekStart(monday); !got.Equal(monday) {
		t.Fatalf("WeekStart(Monday) = %v, want %v", got, monday)
	}
}

func TestBuildGrid_DayShape(t *testing.T) {
	ref := date(2026, time.March, 4)
	grid := BuildGrid(ref, ViewDay, nil, AllSports)

	if len(grid.Days) != 1 {
		t.Fatalf("day view expected 1 column, got %d", len(grid.Days))
	}

	cells := grid.Days[0].Cells
	if len(cells) != HourEnd-HourStart+1 {
		t.Fatalf("expected %d hourly cells, got %d", HourEnd-HourStart+1, len(cells))
	}
	if cells[0].Hour != HourStart || cells[len(cells)-1].Hour != HourEnd {
		t.Fatalf("cells span %d..%d, want %d..%d", cells[0].Hour, cells[len(cells)-1].Hour, HourStart, HourEnd)
	}

	for _, cell := range cells {
		if cell.State != CellAvailable {
			t.Fatalf("empty booking list must render available cells, got %s at %d", cell.State, cell.Hour)
		}
	}
}

func TestBuildGrid_WeekShape(t *testing.T) {
	// Thursday reference; the week column still starts on Monday
	ref := date(2026, time.March, 5)
	grid := BuildGrid(ref, ViewWeek, nil, AllSports)

	if len(grid.Days) != 7 {
		t.Fatalf("week view expected 7 columns, got %d", len(grid.Days))
	}

	if !grid.Days[0].Date.Equal(date(2026, time.March, 2)) {
		t.Fatalf("week must start on Monday, got %v", grid.Days[0].Date)
	}
	if !grid.Days[6].Date.Equal(date(2026, time.March, 8)) {
		t.Fatalf("week must end on Sunday, got %v", grid.Days[6].Date)
	}
}

func TestBuildGrid_Navigation(t *testing.T) {
	ref := date(2026, time.March, 4)

	dayGrid := BuildGrid(ref, ViewDay, nil, AllSports)
	if !dayGrid.PrevDate.Equal(ref.AddDate(0, 0, -1)) || !dayGrid.NextDate.Equal(ref.AddDate(0, 0, 1)) {
		t.Fatalf("day navigation steps by 1, got prev=%v next=%v", dayGrid.PrevDate, dayGrid.NextDate)
	}

	weekGrid := BuildGrid(ref, ViewWeek, nil, AllSports)
	if !weekGrid.PrevDate.Equal(ref.AddDate(0, 0, -7)) || !weekGrid.NextDate.Equal(ref.AddDate(0, 0, 7)) {
		t.Fatalf("week navigation steps by 7, got prev=%v next=%v", weekGrid.PrevDate, weekGrid.NextDate)
	}

	// switching the view mode keeps the reference date
	if !dayGrid.Reference.Equal(weekGrid.Reference) {
		t.Fatalf("view mode change moved the reference: day=%v week=%v", dayGrid.Reference, weekGrid.Reference)
	}
}

func TestBuildGrid_CellClassification(t *testing.T) {
	ref := date(2026, time.March, 4)
	userID := int64(42)
	sportID := int64(1)

	bookings := []entity.Booking{
		{
			ID:        1,
			StartTime: ref.Add(9 * time.Hour),
			EndTime:   ref.Add(10 * time.Hour),
			Status:    entity.BookingStatusBlocked,
		},
		{
			ID:        2,
			StartTime: ref.Add(11 * time.Hour),
			EndTime:   ref.Add(12 * time.Hour),
			Status:    entity.BookingStatusConfirmed,
			GuestName: "Walk In Customer",
		},
		{
			ID:        3,
			SportID:   &sportID,
			UserID:    &userID,
			StartTime: ref.Add(14 * time.Hour),
			EndTime:   ref.Add(16 * time.Hour),
			Status:    entity.BookingStatusConfirmed,
		},
	}

	grid := BuildGrid(ref, ViewDay, bookings, AllSports)
	states := map[int]CellState{}
	for _, cell := range grid.Days[0].Cells {
		states[cell.Hour] = cell.State
	}

	if states[9] != CellBlocked {
		t.Fatalf("09:00 expected blocked, got %s", states[9])
	}
	if states[11] != CellWalkIn {
		t.Fatalf("11:00 expected walk_in, got %s", states[11])
	}
	if states[14] != CellBooked || states[15] != CellBooked {
		t.Fatalf("14:00-16:00 expected booked, got %s / %s", states[14], states[15])
	}
	if states[10] != CellAvailable || states[16] != CellAvailable {
		t.Fatalf("free hours expected available, got %s / %s", states[10], states[16])
	}
}
