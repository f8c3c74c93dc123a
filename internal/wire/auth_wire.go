package wire

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/adaptor"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	rmt *remote.Remote,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)

	// GET /auth/session - resolve the current session; anonymous callers
	// get authenticated:false rather than a 401.
	r.Get("/auth/session", authHandler.Session)
}
