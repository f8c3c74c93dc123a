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

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /auth/login. The upstream session cookie is relayed
// to the browser so later requests are credentialed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, cookies, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	for _, cookie := range cookies {
		http.SetCookie(w, cookie)
	}

	utils.ResponseSuccess(w, "success", response.SessionResponse{
		Authenticated: true,
		User:          user,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Session handles GET /auth/session. Anonymous is a normal answer here,
// not an error.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentSession(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "check session")
		return
	}

	utils.ResponseSuccess(w, "success", response.SessionResponse{
		Authenticated: user != nil,
		User:          user,
	})
}
