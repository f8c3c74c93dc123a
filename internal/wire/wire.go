package wire

import (
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/adaptor"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/usecase"
	"github.com/PlayLink-CC/playlink-sub000/pkg/middleware"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes all dependencies.
func Wiring(rmt *remote.Remote, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(rmt, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, rmt, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the Chi router.
func setupRouter(
	handler *adaptor.Handler,
	rmt *remote.Remote,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.SessionCookie())

	// Apply routes
	wireAuth(r, handler.Auth, rmt, logger)
	wireCalendar(r, handler.Calendar, handler.Slot, rmt, logger)
	wireBooking(r, handler.Booking, rmt, logger)
	wireVenue(r, handler.Venue, handler.Wizard, handler.Pricing, handler.Review, rmt, logger)
	wireWallet(r, handler.Wallet, rmt, logger)
	wireDashboard(r, handler.Dashboard, rmt, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
