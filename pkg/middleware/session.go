package middleware

import (
	"errors"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookie stores the incoming marketplace cookie in the request
// context so every upstream call is credentialed. Applied globally;
// public routes stay anonymous but still forward the cookie.
func SessionCookie() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie := r.Header.Get("Cookie"); cookie != "" {
				r = r.WithContext(utils.SetSessionContext(r.Context(), cookie))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth resolves the session against the marketplace and injects
// the user identity into the context. Anonymous requests are rejected;
// the gate never guesses on upstream failure.
func RequireAuth(sessions remote.SessionAPI, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := sessions.Authenticate(r.Context())
			if err != nil {
				var upstreamErr *remote.UpstreamError
				if errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusUnauthorized {
					utils.ResponseUnauthorized(w, "Authentication required")
					return
				}

				logger.Error("Session check failed",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseBadGateway(w, "Session check failed")
				return
			}

			if user == nil {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.AccountType))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOwner gates venue-management routes to VENUE_OWNER accounts.
// Must run after RequireAuth.
func RequireOwner(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountType, ok := utils.GetAccountTypeFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if accountType != string(entity.AccountTypeVenueOwner) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Non-owner access attempt",
					zap.Int64("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Venue owner access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
