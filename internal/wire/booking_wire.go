package wire

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/adaptor"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	rmt *remote.Remote,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))

		// GET /console/bookings/my - caller's own bookings
		r.Get("/console/bookings/my", bookingHandler.MyBookings)

		// POST /console/bookings/calculate-price - quote before checkout
		r.Post("/console/bookings/calculate-price", bookingHandler.CalculatePrice)

		// POST /console/bookings/checkout - Stripe checkout session
		r.Post("/console/bookings/checkout", bookingHandler.Checkout)

		// GET /console/bookings/checkout-success?session_id=
		r.Get("/console/bookings/checkout-success", bookingHandler.CheckoutSuccess)

		// POST /console/bookings/pay-split-share - settle a split share
		// (the booking is named in the body)
		r.Post("/console/bookings/pay-split-share", bookingHandler.PaySplitShare)
	})

	// ==================== OWNER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))
		r.Use(middleware.RequireOwner(log))

		// GET /console/bookings/owner - owner's venue bookings
		r.Get("/console/bookings/owner", bookingHandler.OwnerBookings)

		// GET /console/bookings/{id}?venue=&date= - booking detail panel
		r.Get("/console/bookings/{id}", bookingHandler.Detail)

		// POST /console/bookings/{id}/cancel?block= - gated by confirm flag
		r.Post("/console/bookings/{id}/cancel", bookingHandler.Cancel)
	})
}
