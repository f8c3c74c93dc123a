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
	"github.com/PlayLink-CC/playlink-sub000/internal/wizard"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

func newWizardService(t *testing.T, handler http.HandlerFunc) WizardService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := remote.NewClient(utils.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	return NewWizardService(
		remote.NewVenueAPI(client, zap.NewNop()),
		wizard.NewStore(time.Hour),
		zap.NewNop(),
	)
}

func ownerContext(ownerID int64) context.Context {
	return utils.SetUserContext(context.Background(), ownerID, "VENUE_OWNER")
}

func completedForm() *wizard.Form {
	return &wizard.Form{
		Name:         "Arena A",
		Address:      "1 Main St",
		City:         "Colombo",
		PricePerHour: "2500",
		SportIDs:     []int64{1},
	}
}

// walks a fresh draft to the final step.
func startCompletedDraft(t *testing.T, service WizardService, ctx context.Context) string {
	t.Helper()

	draft, err := service.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	form := completedForm()
	for i := 0; i < 3; i++ {
		if _, err := service.Next(ctx, draft.ID, form); err != nil {
			t.Fatalf("Next (step %d): %v", i+1, err)
		}
	}

	return draft.ID
}

func TestSubmitSendsExactlyOneRequest(t *testing.T) {
	var requests atomic.Int64
	arrived := make(chan struct{})
	release := make(chan struct{})

	service := newWizardService(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		close(arrived)
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":5,"name":"Arena A"}`))
	})

	ctx := ownerContext(1)
	draftID := startCompletedDraft(t, service, ctx)

	done := make(chan error, 1)
	go func() {
		_, err := service.Submit(ctx, draftID, nil)
		done <- err
	}()

	// wait until the first submit is in flight, then race a second one
	<-arrived
	if _, err := service.Submit(ctx, draftID, nil); !errors.Is(err, wizard.ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight for concurrent submit, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}

	if got := requests.Load(); got != 1 {
		t.Fatalf("expected exactly one venue creation request, got %d", got)
	}

	// the draft is consumed on success
	if _, err := service.Get(ctx, draftID); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected draft gone after successful submit, got %v", err)
	}
}

func TestSubmitFailureKeepsDraftForRetry(t *testing.T) {
	var requests atomic.Int64
	service := newWizardService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"name already taken"}`))
			return
		}
		w.Write([]byte(`{"id":5,"name":"Arena A"}`))
	})

	ctx := ownerContext(1)
	draftID := startCompletedDraft(t, service, ctx)

	if _, err := service.Submit(ctx, draftID, nil); err == nil {
		t.Fatal("expected first submit to fail")
	}

	// draft survives at the final step, and the in-flight slot is released
	draft, err := service.Get(ctx, draftID)
	if err != nil {
		t.Fatalf("Get after failed submit: %v", err)
	}
	if draft.Step != int(wizard.StepImages) {
		t.Fatalf("expected draft still at final step, got %d", draft.Step)
	}

	venue, err := service.Submit(ctx, draftID, nil)
	if err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if venue.ID != 5 {
		t.Fatalf("expected venue 5, got %d", venue.ID)
	}
}

func TestSubmitRejectedBeforeFinalStep(t *testing.T) {
	var requests atomic.Int64
	service := newWizardService(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	})

	ctx := ownerContext(1)
	draft, err := service.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := service.Submit(ctx, draft.ID, completedForm()); !errors.Is(err, wizard.ErrNotLastStep) {
		t.Fatalf("expected ErrNotLastStep, got %v", err)
	}
	if got := requests.Load(); got != 0 {
		t.Fatalf("expected no upstream request before the final step, got %d", got)
	}
}

func TestDraftsAreScopedToTheirOwner(t *testing.T) {
	service := newWizardService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx := ownerContext(1)
	draft, err := service.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := service.Get(ownerContext(2), draft.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected foreign draft to look missing, got %v", err)
	}
}

func TestNextRejectionKeepsCursor(t *testing.T) {
	service := newWizardService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx := ownerContext(1)
	draft, err := service.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	_, err = service.Next(ctx, draft.ID, &wizard.Form{Name: "Arena A"})
	var gateErr *wizard.GateError
	if !errors.As(err, &gateErr) {
		t.Fatalf("expected *GateError for incomplete basic info, got %v", err)
	}

	current, err := service.Get(ctx, draft.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if current.Step != int(wizard.StepBasicInfo) {
		t.Fatalf("expected cursor unmoved on rejection, got step %d", current.Step)
	}
}
