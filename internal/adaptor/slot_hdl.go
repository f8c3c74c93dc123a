package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/dto/request"
	"github.com/PlayLink-CC/playlink-sub000/internal/usecase"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// CreateSlotAction handles POST /console/venues/{id}/slots. One request
// covers both walk-in creation and blocking; the action field decides.
func (h *SlotHandler) CreateSlotAction(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	if venueID == 0 {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	var req request.SlotActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateSlotAction(r.Context(), venueID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create slot action")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}
