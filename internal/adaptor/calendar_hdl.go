package adaptor

import (
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/calendar"
	"github.com/PlayLink-CC/playlink-sub000/internal/usecase"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	service usecase.CalendarService
	log     *zap.Logger
}

func NewCalendarHandler(service usecase.CalendarService, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log.With(zap.String("handler", "calendar")),
	}
}

// VenueCalendar handles GET /console/venues/{id}/calendar?date=&view=&sport=
func (h *CalendarHandler) VenueCalendar(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	if venueID == 0 {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	query := r.URL.Query()
	reference, err := utils.ParseDate(query.Get("date"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	mode := calendar.ViewMode(query.Get("view"))
	sportID := utils.ParseInt64(query.Get("sport")) // 0 means all sports

	view, err := h.service.VenueCalendar(r.Context(), venueID, reference, mode, sportID)
	if err != nil {
		handleServiceError(w, h.log, err, "render calendar")
		return
	}

	utils.ResponseSuccess(w, "success", view)
}
