package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(utils.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestClientForwardsSessionCookie(t *testing.T) {
	var gotCookie string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	ctx := utils.SetSessionContext(context.Background(), "connect.sid=abc123")
	if err := client.do(ctx, http.MethodGet, "/api/venues", nil, nil, nil); err != nil {
		t.Fatalf("do: %v", err)
	}

	if gotCookie != "connect.sid=abc123" {
		t.Fatalf("expected session cookie forwarded, got %q", gotCookie)
	}
}

func TestClientOmitsCookieForAnonymousContext(t *testing.T) {
	var gotCookie string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{}`))
	})

	if err := client.do(context.Background(), http.MethodGet, "/api/venues", nil, nil, nil); err != nil {
		t.Fatalf("do: %v", err)
	}

	if gotCookie != "" {
		t.Fatalf("expected no cookie header, got %q", gotCookie)
	}
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Slot already booked"}`))
	})

	err := client.do(context.Background(), http.MethodPost, "/api/bookings", nil, map[string]any{}, nil)
	if err == nil {
		t.Fatal("expected error for 409 reply")
	}

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *UpstreamError, got %T: %v", err, err)
	}
	if upstreamErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", upstreamErr.StatusCode)
	}
	if upstreamErr.Message != "Slot already booked" {
		t.Fatalf("expected upstream message relayed verbatim, got %q", upstreamErr.Message)
	}
}

func TestClientFallsBackToStatusText(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>nginx</html>"))
	})

	err := client.do(context.Background(), http.MethodGet, "/api/venues", nil, nil, nil)

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *UpstreamError, got %T: %v", err, err)
	}
	if upstreamErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected status text fallback, got %q", upstreamErr.Message)
	}
}

func TestClientRelaysSetCookieOnLogin(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "connect.sid", Value: "s1", HttpOnly: true})
		w.Write([]byte(`{"id":1}`))
	})

	var out struct {
		ID int64 `json:"id"`
	}
	cookies, err := client.doWithCookies(context.Background(), http.MethodPost, "/api/users/login", map[string]string{}, &out)
	if err != nil {
		t.Fatalf("doWithCookies: %v", err)
	}

	if len(cookies) != 1 || cookies[0].Name != "connect.sid" {
		t.Fatalf("expected one session cookie relayed, got %v", cookies)
	}
	if out.ID != 1 {
		t.Fatalf("expected body decoded alongside cookies, got %+v", out)
	}
}

func TestClientHonoursContextCancellation(t *testing.T) {
	started := make(chan struct{})
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	if err := client.do(ctx, http.MethodGet, "/api/venues", nil, nil, nil); err == nil {
		t.Fatal("expected error after context cancellation")
	}
}
