package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/request"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

type SlotService interface {
	CreateSlotAction(ctx context.Context, venueID int64, req *request.SlotActionRequest) (*entity.Booking, error)
}

type slotService struct {
	bookings remote.BookingAPI
	log      *zap.Logger
}

func NewSlotService(bookings remote.BookingAPI, log *zap.Logger) SlotService {
	return &slotService{
		bookings: bookings,
		log:      log.With(zap.String("service", "slot")),
	}
}

// slotPayload is the upstream create-slot request. A BLOCK carries no
// customer fields at all; they are stripped, not just blanked.
type slotPayload struct {
	Type       string    `json:"type"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	SportID    *int64    `json:"sportId,omitempty"`
	Amount     *float64  `json:"amount,omitempty"`
	GuestName  string    `json:"guestName,omitempty"`
	GuestEmail string    `json:"guestEmail,omitempty"`
}

func (s *slotService) CreateSlotAction(ctx context.Context, venueID int64, req *request.SlotActionRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Slot action validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, end, err := req.Window()
	if err != nil {
		return nil, fmt.Errorf("invalid slot window: %w", err)
	}

	payload := slotPayload{
		Type:      req.Action,
		StartTime: start,
		EndTime:   end,
		SportID:   req.SportID,
	}

	if req.Action == request.SlotActionWalkIn {
		amount := float64(0)
		if req.Amount != nil {
			amount = *req.Amount
		}
		payload.Amount = &amount
		payload.GuestName = req.CustomerName
		payload.GuestEmail = req.CustomerEmail
	}

	booking, err := s.bookings.CreateWalkIn(ctx, venueID, payload)
	if err != nil {
		return nil, err
	}

	s.log.Info("Slot action created",
		zap.Int64("venue_id", venueID),
		zap.String("action", req.Action),
		zap.Time("start", start),
		zap.Time("end", end),
	)

	return booking, nil
}
