package wire

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/adaptor"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVenue(
	r chi.Router,
	venueHandler *adaptor.VenueHandler,
	wizardHandler *adaptor.WizardHandler,
	pricingHandler *adaptor.PricingHandler,
	reviewHandler *adaptor.ReviewHandler,
	rmt *remote.Remote,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /console/venues?search= - browse the marketplace catalog
	r.Get("/console/venues", venueHandler.List)

	// GET /console/venues/{id}/sports and reviews are public reads
	r.Get("/console/venues/{id}/sports", venueHandler.Sports)
	r.Get("/console/venues/{id}/reviews", reviewHandler.List)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))

		// GET /console/venues/my must be registered before /{id} would
		// otherwise swallow it; chi matches static segments first.
		r.Get("/console/venues/my", venueHandler.MyVenues)
		r.Get("/console/venues/{id}", venueHandler.Get)

		// POST /console/venues/{id}/reviews - rate a venue after playing
		r.Post("/console/venues/{id}/reviews", reviewHandler.Create)
	})

	// ==================== OWNER ROUTES ====================
	// Venue creation wizard
	r.Route("/console/wizard", func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))
		r.Use(middleware.RequireOwner(log))

		r.Post("/", wizardHandler.Start)
		r.Get("/{draftID}", wizardHandler.Get)
		r.Post("/{draftID}/next", wizardHandler.Next)
		r.Post("/{draftID}/back", wizardHandler.Back)
		r.Post("/{draftID}/submit", wizardHandler.Submit)
	})

	// Pricing rules and review replies
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))
		r.Use(middleware.RequireOwner(log))

		r.Get("/console/venues/{id}/pricing-rules", pricingHandler.List)
		r.Post("/console/venues/{id}/pricing-rules", pricingHandler.Create)
		r.Delete("/console/venues/{id}/pricing-rules/{ruleID}", pricingHandler.Delete)

		r.Post("/console/venues/{id}/reviews/{reviewID}/reply", reviewHandler.Reply)
	})
}
