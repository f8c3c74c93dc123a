package adaptor

import (
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/usecase"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// List handles GET /console/venues?search=
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(w, h.log, err, "list venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// Get handles GET /console/venues/{id}
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	if venueID == 0 {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	venue, err := h.service.FindByID(r.Context(), venueID)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// MyVenues handles GET /console/venues/my
func (h *VenueHandler) MyVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.MyVenues(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get my venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// Sports handles GET /console/venues/{id}/sports
func (h *VenueHandler) Sports(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	if venueID == 0 {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	sports, err := h.service.Sports(r.Context(), venueID)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue sports")
		return
	}

	utils.ResponseSuccess(w, "success", sports)
}
