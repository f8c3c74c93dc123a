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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// List handles GET /console/venues/{id}/reviews
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	if venueID == 0 {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	reviews, err := h.service.List(r.Context(), venueID)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// Create handles POST /console/venues/{id}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	if venueID == 0 {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Create(r.Context(), venueID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// Reply handles POST /console/venues/{id}/reviews/{reviewID}/reply
func (h *ReviewHandler) Reply(w http.ResponseWriter, r *http.Request) {
	venueID := utils.ParseInt64(chi.URLParam(r, "id"))
	reviewID := utils.ParseInt64(chi.URLParam(r, "reviewID"))
	if venueID == 0 || reviewID == 0 {
		utils.ResponseBadRequest(w, "Venue and review IDs are required", nil)
		return
	}

	var req request.ReplyReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Reply(r.Context(), venueID, reviewID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "reply to review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}
