package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/usecase"
	"github.com/PlayLink-CC/playlink-sub000/internal/wizard"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Calendar  *CalendarHandler
	Slot      *SlotHandler
	Booking   *BookingHandler
	Wizard    *WizardHandler
	Venue     *VenueHandler
	Pricing   *PricingHandler
	Review    *ReviewHandler
	Wallet    *WalletHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Calendar:  NewCalendarHandler(service.Calendar, log),
		Slot:      NewSlotHandler(service.Slot, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Wizard:    NewWizardHandler(service.Wizard, log),
		Venue:     NewVenueHandler(service.Venue, log),
		Pricing:   NewPricingHandler(service.Pricing, log),
		Review:    NewReviewHandler(service.Review, log),
		Wallet:    NewWalletHandler(service.Wallet, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}

// handleServiceError maps service failures onto the response envelope.
// Upstream errors keep their message verbatim so the operator sees what
// the marketplace said; everything else falls back to text matching on
// the wrapped error.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var gateErr *wizard.GateError
	var upstreamErr *remote.UpstreamError

	switch {
	case errors.Is(err, usecase.ErrConfirmationRequired):
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, wizard.ErrSubmitInFlight):
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrDraftNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &gateErr):
		log.Warn(operation+" rejected by step gate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, gateErr.Error(), nil)

	case errors.As(err, &upstreamErr):
		relayUpstreamError(w, log, upstreamErr, operation)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "not found"):
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(err.Error(), "unauthorized"):
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Something went wrong")
	}
}

func relayUpstreamError(w http.ResponseWriter, log *zap.Logger, err *remote.UpstreamError, operation string) {
	log.Warn(operation+" failed upstream",
		zap.Int("status", err.StatusCode),
		zap.String("message", err.Message),
		zap.String("operation", operation))

	switch err.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		utils.ResponseBadRequest(w, err.Message, nil)
	case http.StatusUnauthorized:
		utils.ResponseUnauthorized(w, err.Message)
	case http.StatusForbidden:
		utils.ResponseForbidden(w, err.Message)
	case http.StatusNotFound:
		utils.ResponseNotFound(w, err.Message)
	case http.StatusConflict:
		utils.ResponseConflict(w, err.Message)
	default:
		utils.ResponseBadGateway(w, err.Message)
	}
}
