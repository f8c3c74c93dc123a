package wire

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/adaptor"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCalendar(
	r chi.Router,
	calendarHandler *adaptor.CalendarHandler,
	slotHandler *adaptor.SlotHandler,
	rmt *remote.Remote,
	log *zap.Logger,
) {
	// ==================== OWNER ROUTES ====================
	// The calendar console belongs to venue owners only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))
		r.Use(middleware.RequireOwner(log))

		// GET /console/venues/{id}/calendar?date=&view=&sport=
		r.Get("/console/venues/{id}/calendar", calendarHandler.VenueCalendar)

		// POST /console/venues/{id}/slots - walk-in or block
		r.Post("/console/venues/{id}/slots", slotHandler.CreateSlotAction)
	})
}
