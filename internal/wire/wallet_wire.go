package wire

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/adaptor"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWallet(
	r chi.Router,
	walletHandler *adaptor.WalletHandler,
	rmt *remote.Remote,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/console/wallet", func(r chi.Router) {
		r.Use(middleware.RequireAuth(rmt.Session, log))

		r.Get("/summary", walletHandler.Summary)
		r.Get("/balance", walletHandler.Balance)
		r.Post("/topup", walletHandler.Topup)
		r.Post("/confirm-topup", walletHandler.ConfirmTopup)
	})
}
