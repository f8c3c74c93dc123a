package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/response"
	"github.com/PlayLink-CC/playlink-sub000/internal/wizard"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrDraftNotFound = errors.New("draft not found")

const wizardJanitorInterval = 5 * time.Minute

type WizardService interface {
	Start(ctx context.Context) (*response.DraftResponse, error)
	Get(ctx context.Context, draftID string) (*response.DraftResponse, error)
	// Next merges the posted form snapshot, then tries the step gate.
	// A rejected gate returns the error without moving the cursor.
	Next(ctx context.Context, draftID string, form *wizard.Form) (*response.DraftResponse, error)
	Back(ctx context.Context, draftID string, form *wizard.Form) (*response.DraftResponse, error)
	Submit(ctx context.Context, draftID string, form *wizard.Form) (*entity.Venue, error)
	StartJanitor(ctx context.Context)
}

type wizardService struct {
	venues remote.VenueAPI
	drafts *wizard.Store
	log    *zap.Logger
}

func NewWizardService(venues remote.VenueAPI, drafts *wizard.Store, log *zap.Logger) WizardService {
	return &wizardService{
		venues: venues,
		drafts: drafts,
		log:    log.With(zap.String("service", "wizard")),
	}
}

func (s *wizardService) Start(ctx context.Context) (*response.DraftResponse, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("unauthorized: no user in context")
	}

	draft := wizard.NewDraft(ownerID)
	s.drafts.Put(draft)

	s.log.Info("Wizard draft started",
		zap.String("draft_id", draft.ID.String()),
		zap.Int64("owner_id", ownerID),
	)

	return response.DraftToResponse(draft), nil
}

func (s *wizardService) Get(ctx context.Context, draftID string) (*response.DraftResponse, error) {
	draft, err := s.find(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return response.DraftToResponse(draft), nil
}

func (s *wizardService) Next(ctx context.Context, draftID string, form *wizard.Form) (*response.DraftResponse, error) {
	draft, err := s.find(ctx, draftID)
	if err != nil {
		return nil, err
	}

	merge(draft, form)

	if err := draft.Next(); err != nil {
		s.log.Warn("Wizard advance rejected",
			zap.String("draft_id", draftID),
			zap.Error(err),
		)
		return nil, err
	}

	return response.DraftToResponse(draft), nil
}

func (s *wizardService) Back(ctx context.Context, draftID string, form *wizard.Form) (*response.DraftResponse, error) {
	draft, err := s.find(ctx, draftID)
	if err != nil {
		return nil, err
	}

	merge(draft, form)
	draft.Back()

	return response.DraftToResponse(draft), nil
}

// Submit sends exactly one venue creation request upstream per draft at
// a time; concurrent submits bounce off the in-flight flag. On success
// the draft is gone, on failure it stays at the final step for
// correction.
func (s *wizardService) Submit(ctx context.Context, draftID string, form *wizard.Form) (*entity.Venue, error) {
	draft, err := s.find(ctx, draftID)
	if err != nil {
		return nil, err
	}

	merge(draft, form)

	payload, err := draft.Payload()
	if err != nil {
		return nil, err
	}

	if !draft.BeginSubmit() {
		return nil, wizard.ErrSubmitInFlight
	}

	venue, err := s.venues.Create(ctx, payload)
	if err != nil {
		draft.EndSubmit()
		s.log.Warn("Venue creation failed",
			zap.String("draft_id", draftID),
			zap.Error(err),
		)
		return nil, err
	}

	s.drafts.Delete(draft.ID)

	s.log.Info("Venue created",
		zap.String("draft_id", draftID),
		zap.Int64("venue_id", venue.ID),
		zap.String("name", payload.Name),
	)

	return venue, nil
}

func (s *wizardService) StartJanitor(ctx context.Context) {
	s.drafts.StartJanitor(ctx, wizardJanitorInterval)
}

func (s *wizardService) find(ctx context.Context, draftID string) (*wizard.Draft, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("unauthorized: no user in context")
	}

	id, err := uuid.Parse(draftID)
	if err != nil {
		return nil, ErrDraftNotFound
	}

	draft, found := s.drafts.Get(id)
	if !found || draft.OwnerID != ownerID {
		// a foreign draft looks exactly like a missing one
		return nil, ErrDraftNotFound
	}

	return draft, nil
}

func merge(draft *wizard.Draft, form *wizard.Form) {
	if form != nil {
		draft.SetForm(*form)
	}
}
