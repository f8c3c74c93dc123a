package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/dto/request"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/response"
	"github.com/PlayLink-CC/playlink-sub000/internal/usecase"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// MyBookings handles GET /console/bookings/my
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.MyBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get my bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// OwnerBookings handles GET /console/bookings/owner
func (h *BookingHandler) OwnerBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.OwnerBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get owner bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Detail handles GET /console/bookings/{id}?venue=&date=
func (h *BookingHandler) Detail(w http.ResponseWriter, r *http.Request) {
	bookingID := utils.ParseInt64(chi.URLParam(r, "id"))
	venueID := utils.ParseInt64(r.URL.Query().Get("venue"))
	if bookingID == 0 || venueID == 0 {
		utils.ResponseBadRequest(w, "Booking and venue IDs are required", nil)
		return
	}

	day, err := utils.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	detail, err := h.service.Detail(r.Context(), venueID, bookingID, day)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// Cancel handles POST /console/bookings/{id}/cancel. The body must carry
// confirm=true or nothing is sent upstream.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	bookingID := utils.ParseInt64(chi.URLParam(r, "id"))
	if bookingID == 0 {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	isBlock := r.URL.Query().Get("block") == "true"

	message, err := h.service.Cancel(r.Context(), bookingID, &req, isBlock)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

// CalculatePrice handles POST /console/bookings/calculate-price
func (h *BookingHandler) CalculatePrice(w http.ResponseWriter, r *http.Request) {
	var req request.CalculatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	price, err := h.service.CalculatePrice(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "calculate price")
		return
	}

	utils.ResponseSuccess(w, "success", response.PriceResponse{Price: price})
}

// Checkout handles POST /console/bookings/checkout
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req request.CheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	checkoutURL, err := h.service.CreateCheckoutSession(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create checkout session")
		return
	}

	utils.ResponseSuccess(w, "success", response.CheckoutResponse{CheckoutURL: checkoutURL})
}

// CheckoutSuccess handles GET /console/bookings/checkout-success?session_id=
func (h *BookingHandler) CheckoutSuccess(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")

	booking, err := h.service.CheckoutSuccess(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm checkout")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// PaySplitShare handles POST /console/bookings/pay-split-share
func (h *BookingHandler) PaySplitShare(w http.ResponseWriter, r *http.Request) {
	var req request.PaySplitShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.PaySplitShare(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "pay split share")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
