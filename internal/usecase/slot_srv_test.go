package usecase

import (
	"context"
	"encoding/json"
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

func newSlotService(t *testing.T, handler http.HandlerFunc) SlotService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := remote.NewClient(utils.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	return NewSlotService(remote.NewBookingAPI(client, zap.NewNop()), zap.NewNop())
}

func TestCreateWalkInDefaultsAmountToZero(t *testing.T) {
	var got map[string]any
	service := newSlotService(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":20,"status":"CONFIRMED"}`))
	})

	booking, err := service.CreateSlotAction(context.Background(), 3, &request.SlotActionRequest{
		Date:          "2026-03-02",
		StartTime:     "09:00",
		DurationHours: 1.5,
		Action:        request.SlotActionWalkIn,
		CustomerName:  "Nimal",
	})
	if err != nil {
		t.Fatalf("CreateSlotAction: %v", err)
	}
	if booking.ID != 20 {
		t.Fatalf("expected booking 20, got %d", booking.ID)
	}

	if got["type"] != "WALK_IN" {
		t.Fatalf("expected WALK_IN payload, got %v", got["type"])
	}
	if amount, ok := got["amount"].(float64); !ok || amount != 0 {
		t.Fatalf("expected amount defaulted to 0, got %v", got["amount"])
	}
	if got["guestName"] != "Nimal" {
		t.Fatalf("expected guest name in payload, got %v", got["guestName"])
	}
	if got["startTime"] != "2026-03-02T09:00:00Z" {
		t.Fatalf("unexpected start time %v", got["startTime"])
	}
	if got["endTime"] != "2026-03-02T10:30:00Z" {
		t.Fatalf("expected 1.5h window, got end %v", got["endTime"])
	}
}

func TestCreateBlockStripsCustomerFields(t *testing.T) {
	var got map[string]any
	service := newSlotService(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":21,"status":"BLOCKED"}`))
	})

	_, err := service.CreateSlotAction(context.Background(), 3, &request.SlotActionRequest{
		Date:          "2026-03-02",
		StartTime:     "14:00",
		DurationHours: 2,
		Action:        request.SlotActionBlock,
	})
	if err != nil {
		t.Fatalf("CreateSlotAction: %v", err)
	}

	if got["type"] != "BLOCK" {
		t.Fatalf("expected BLOCK payload, got %v", got["type"])
	}
	for _, key := range []string{"amount", "guestName", "guestEmail"} {
		if _, present := got[key]; present {
			t.Fatalf("expected %s absent from block payload, got %v", key, got[key])
		}
	}
}

func TestCreateSlotActionValidation(t *testing.T) {
	var requests atomic.Int64
	service := newSlotService(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	})

	cases := []struct {
		name string
		req  *request.SlotActionRequest
	}{
		{"walk-in without customer name", &request.SlotActionRequest{
			Date: "2026-03-02", StartTime: "09:00", DurationHours: 1, Action: request.SlotActionWalkIn,
		}},
		{"off-menu duration", &request.SlotActionRequest{
			Date: "2026-03-02", StartTime: "09:00", DurationHours: 0.75, Action: request.SlotActionBlock,
		}},
		{"unknown action", &request.SlotActionRequest{
			Date: "2026-03-02", StartTime: "09:00", DurationHours: 1, Action: "MAINTENANCE",
		}},
		{"malformed date", &request.SlotActionRequest{
			Date: "02-03-2026", StartTime: "09:00", DurationHours: 1, Action: request.SlotActionBlock,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.CreateSlotAction(context.Background(), 3, tc.req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	if got := requests.Load(); got != 0 {
		t.Fatalf("expected no upstream requests for invalid input, got %d", got)
	}
}
