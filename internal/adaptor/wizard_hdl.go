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

type WizardHandler struct {
	service usecase.WizardService
	log     *zap.Logger
}

func NewWizardHandler(service usecase.WizardService, log *zap.Logger) *WizardHandler {
	return &WizardHandler{
		service: service,
		log:     log.With(zap.String("handler", "wizard")),
	}
}

// Start handles POST /console/wizard
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.Start(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "start wizard")
		return
	}

	utils.ResponseCreated(w, "success", draft)
}

// Get handles GET /console/wizard/{draftID}
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.Get(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		handleServiceError(w, h.log, err, "get wizard draft")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// Next handles POST /console/wizard/{draftID}/next
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeStep(w, r)
	if !ok {
		return
	}

	draft, err := h.service.Next(r.Context(), chi.URLParam(r, "draftID"), req.Form)
	if err != nil {
		handleServiceError(w, h.log, err, "advance wizard")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// Back handles POST /console/wizard/{draftID}/back
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeStep(w, r)
	if !ok {
		return
	}

	draft, err := h.service.Back(r.Context(), chi.URLParam(r, "draftID"), req.Form)
	if err != nil {
		handleServiceError(w, h.log, err, "step wizard back")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// Submit handles POST /console/wizard/{draftID}/submit
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeStep(w, r)
	if !ok {
		return
	}

	venue, err := h.service.Submit(r.Context(), chi.URLParam(r, "draftID"), req.Form)
	if err != nil {
		handleServiceError(w, h.log, err, "submit wizard")
		return
	}

	utils.ResponseCreated(w, "success", venue)
}

// decodeStep tolerates an empty body; the form snapshot is optional on
// every transition.
func (h *WizardHandler) decodeStep(w http.ResponseWriter, r *http.Request) (*request.WizardStepRequest, bool) {
	var req request.WizardStepRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return nil, false
		}
	}
	return &req, true
}
