package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

// testApp wires the full router against a mock marketplace upstream that
// authenticates any request carrying a cookie as a venue owner.
func testApp(t *testing.T) *App {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/users/authenticate":
			if r.Header.Get("Cookie") == "" {
				w.Write([]byte(`{"authenticated":false}`))
				return
			}
			w.Write([]byte(`{"authenticated":true,"user":{"id":1,"accountType":"VENUE_OWNER"}}`))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(upstream.Close)

	logger := zap.NewNop()
	config := &utils.Config{
		Upstream: utils.UpstreamConfig{BaseURL: upstream.URL, Timeout: 5 * time.Second},
		Wizard:   utils.WizardConfig{DraftTTL: time.Hour},
	}

	client := remote.NewClient(config.Upstream, logger)
	return Wiring(remote.NewRemote(client, logger), config, logger)
}

func TestPaySplitShareRoute(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/console/bookings/pay-split-share", strings.NewReader(`{"bookingId":1}`))
	req.Header.Set("Cookie", "connect.sid=s1")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	// the booking is addressed in the body, not the path
	req = httptest.NewRequest(http.MethodPost, "/console/bookings/1/pay-share", strings.NewReader(`{"bookingId":1}`))
	req.Header.Set("Cookie", "connect.sid=s1")
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a per-booking path, got %d", rec.Code)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/console/bookings/pay-split-share", strings.NewReader(`{"bookingId":1}`))
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session cookie, got %d", rec.Code)
	}
}

func TestBookingDetailRejectsMalformedDate(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/console/bookings/5?venue=3&date=05-03-2026", nil)
	req.Header.Set("Cookie", "connect.sid=s1")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("expected OK body, got %q", rec.Body.String())
	}
}
