package wire

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/adaptor"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	rmt *remote.Remote,
	log *zap.Logger,
) {
	// ==================== OWNER ROUTES ====================
	r.Route("/console/analytics", func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))
		r.Use(middleware.RequireOwner(log))

		r.Get("/summary", dashboardHandler.OwnerSummary)
		r.Get("/detailed", dashboardHandler.OwnerDetailed)
		r.Get("/report", dashboardHandler.OwnerReport)
	})

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/console/notifications", func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))

		r.Get("/", dashboardHandler.Notifications)
		r.Put("/all-read", dashboardHandler.MarkAllRead)
		r.Put("/{id}/read", dashboardHandler.MarkRead)
	})
}
