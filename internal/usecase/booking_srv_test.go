package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/request"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

func newBookingService(t *testing.T, handler http.HandlerFunc) BookingService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := remote.NewClient(utils.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	return NewBookingService(remote.NewBookingAPI(client, zap.NewNop()), zap.NewNop())
}

func TestCancelWithoutConfirmationSendsNothing(t *testing.T) {
	var requests atomic.Int64
	service := newBookingService(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	})

	cases := []*request.CancelBookingRequest{
		nil,
		{Confirm: false},
	}

	for _, req := range cases {
		_, err := service.Cancel(context.Background(), 42, req, false)
		if !errors.Is(err, ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
	}

	if got := requests.Load(); got != 0 {
		t.Fatalf("expected zero upstream requests without confirmation, got %d", got)
	}
}

func TestCancelConfirmedSendsExactlyOneRequest(t *testing.T) {
	var requests atomic.Int64
	var gotMethod, gotPath string
	service := newBookingService(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})

	msg, err := service.Cancel(context.Background(), 42, &request.CancelBookingRequest{Confirm: true}, false)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if got := requests.Load(); got != 1 {
		t.Fatalf("expected exactly one upstream request, got %d", got)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/bookings/42/cancel" {
		t.Fatalf("unexpected upstream call %s %s", gotMethod, gotPath)
	}
	if msg != "Booking cancelled, the customer will be refunded in full" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCancelBlockUsesUnblockCopy(t *testing.T) {
	service := newBookingService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	msg, err := service.Cancel(context.Background(), 7, &request.CancelBookingRequest{Confirm: true}, true)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if msg != "Slot unblocked" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCancelRelaysUpstreamError(t *testing.T) {
	service := newBookingService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Not your venue"}`))
	})

	_, err := service.Cancel(context.Background(), 42, &request.CancelBookingRequest{Confirm: true}, false)

	var upstreamErr *remote.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *UpstreamError, got %T: %v", err, err)
	}
	if upstreamErr.StatusCode != http.StatusForbidden || upstreamErr.Message != "Not your venue" {
		t.Fatalf("expected upstream error relayed, got %+v", upstreamErr)
	}
}

func TestDetailFindsBookingInCalendarDay(t *testing.T) {
	service := newBookingService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bookings/venue/3/calendar" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bookings":[
			{"id":10,"status":"CONFIRMED","startTime":"2026-03-02T09:00:00Z","endTime":"2026-03-02T10:00:00Z"},
			{"id":11,"status":"CONFIRMED","startTime":"2026-03-02T10:00:00Z","endTime":"2026-03-02T11:00:00Z"}
		]}`))
	})

	day := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
	detail, err := service.Detail(context.Background(), 3, 11, day)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Booking.ID != 11 {
		t.Fatalf("expected booking 11, got %d", detail.Booking.ID)
	}

	if _, err := service.Detail(context.Background(), 3, 99, day); err == nil {
		t.Fatal("expected error for booking missing from the day")
	}
}
