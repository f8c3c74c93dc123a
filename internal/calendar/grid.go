package calendar

import (
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
)

type ViewMode string

const (
	ViewDay  ViewMode = "day"
	ViewWeek ViewMode = "week"
)

// Operating hours of the grid, inclusive on both ends.
const (
	HourStart = 7
	HourEnd   = 21
)

type CellState string

const (
	CellAvailable CellState = "available"
	CellBlocked   CellState = "blocked"
	CellWalkIn    CellState = "walk_in"
	CellBooked    CellState = "booked"
)

type Cell struct {
	Start   time.Time       `json:"start"`
	Hour    int             `json:"hour"`
	State   CellState       `json:"state"`
	Booking *entity.Booking `json:"booking,omitempty"`
}

type Day struct {
	Date  time.Time `json:"date"`
	Cells []Cell    `json:"cells"`
}

type Grid struct {
	Mode      ViewMode  `json:"mode"`
	Reference time.Time `json:"reference"`
	PrevDate  time.Time `json:"prevDate"`
	NextDate  time.Time `json:"nextDate"`
	Days      []Day     `json:"days"`
}

// WeekStart returns the Monday of the week containing t, at midnight in
// t's location. Sunday rolls back six days.
func WeekStart(t time.Time) time.Time {
	day := midnight(t)
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}

// ViewRange returns the half-open visible window for a reference date:
// the single day in day view, Monday through the following Monday in
// week view.
func ViewRange(reference time.Time, mode ViewMode) (time.Time, time.Time) {
	if mode == ViewWeek {
		start := WeekStart(reference)
		return start, start.AddDate(0, 0, 7)
	}

	start := midnight(reference)
	return start, start.AddDate(0, 0, 1)
}

// BuildGrid renders the visible window into day columns of hourly cells,
// classifying each cell by the first conflicting booking. Missing or
// partial booking data simply leaves cells available.
func BuildGrid(reference time.Time, mode ViewMode, bookings []entity.Booking, sportID int64) Grid {
	start, end := ViewRange(reference, mode)

	step := 1
	if mode == ViewWeek {
		step = 7
	}

	grid := Grid{
		Mode:      mode,
		Reference: midnight(reference),
		PrevDate:  midnight(reference).AddDate(0, 0, -step),
		NextDate:  midnight(reference).AddDate(0, 0, step),
	}

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		column := Day{Date: day, Cells: make([]Cell, 0, HourEnd-HourStart+1)}

		for hour := HourStart; hour <= HourEnd; hour++ {
			slot := NewSlot(day, hour)
			cell := Cell{
				Start: slot.Start,
				Hour:  hour,
				State: CellAvailable,
			}

			if booking := FirstConflict(slot, bookings, sportID); booking != nil {
				cell.Booking = booking
				cell.State = classify(booking)
			}

			column.Cells = append(column.Cells, cell)
		}

		grid.Days = append(grid.Days, column)
	}

	return grid
}

func classify(booking *entity.Booking) CellState {
	switch {
	case booking.IsBlock():
		return CellBlocked
	case booking.IsWalkIn():
		return CellWalkIn
	default:
		return CellBooked
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
