package response

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/calendar"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
)

// CalendarResponse is the rendered calendar view. Degraded marks a grid
// built without booking data after an upstream failure (fail-open mode);
// the caller can surface it instead of silently showing everything free.
type CalendarResponse struct {
	Venue    *entity.Venue  `json:"venue,omitempty"`
	Sports   []entity.Sport `json:"sports,omitempty"`
	Grid     calendar.Grid  `json:"grid"`
	Degraded bool           `json:"degraded,omitempty"`
}
