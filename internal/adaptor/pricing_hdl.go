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

type PricingHandler struct {
	service usecase.PricingService
	log     *zap.Logger
}

func NewPricingHandler(service usecase.PricingService, log *zap.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		log:     log.With(zap.String("handler", "pricing")),
	}
}

// List handles GET /console/venues/{id}/pricing-rules
func (h *PricingHandler) List(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	if venueID == 0 {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	rules, err := h.service.List(r.Context(), venueID)
	if err != nil {
		handleServiceError(w, h.log, err, "list pricing rules")
		return
	}

	utils.ResponseSuccess(w, "success", rules)
}

// Create handles POST /console/venues/{id}/pricing-rules
func (h *PricingHandler) Create(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	if venueID == 0 {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	var req request.CreatePricingRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rule, err := h.service.Create(r.Context(), venueID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create pricing rule")
		return
	}

	utils.ResponseCreated(w, "success", rule)
}

// Delete handles DELETE /console/venues/{id}/pricing-rules/{ruleID}
func (h *PricingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	ruleID := utils.ParseInt64(chi.URLParam(r, "ruleID"))
	if venueID == 0 || ruleID == 0 {
		utils.ResponseBadRequest(w, "Venue and rule IDs are required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), venueID, ruleID); err != nil {
		handleServiceError(w, h.log, err, "delete pricing rule")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
