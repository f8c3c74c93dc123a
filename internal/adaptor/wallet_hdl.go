package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/dto/request"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/response"
	"github.com/PlayLink-CC/playlink-sub000/internal/usecase"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

type WalletHandler struct {
	service usecase.WalletService
	log     *zap.Logger
}

func NewWalletHandler(service usecase.WalletService, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		service: service,
		log:     log.With(zap.String("handler", "wallet")),
	}
}

// Summary handles GET /console/wallet/summary
func (h *WalletHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get wallet summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// Balance handles GET /console/wallet/balance
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.Balance(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get wallet balance")
		return
	}

	utils.ResponseSuccess(w, "success", balance)
}

// Topup handles POST /console/wallet/topup
func (h *WalletHandler) Topup(w http.ResponseWriter, r *http.Request) {
	var req request.TopupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	clientSecret, err := h.service.Topup(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create topup intent")
		return
	}

	utils.ResponseSuccess(w, "success", response.TopupResponse{ClientSecret: clientSecret})
}

// ConfirmTopup handles POST /console/wallet/confirm-topup
func (h *WalletHandler) ConfirmTopup(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmTopupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	balance, err := h.service.ConfirmTopup(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm topup")
		return
	}

	utils.ResponseSuccess(w, "success", balance)
}
