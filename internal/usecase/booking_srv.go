package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/request"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/response"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

// ErrConfirmationRequired gates the one irreversible action in the
// console. While it is returned, no cancel request leaves the process.
var ErrConfirmationRequired = errors.New("cancellation requires confirmation")

type BookingService interface {
	MyBookings(ctx context.Context) ([]entity.Booking, error)
	OwnerBookings(ctx context.Context) ([]entity.Booking, error)
	// Detail looks the booking up in its venue's calendar day.
	Detail(ctx context.Context, venueID, bookingID int64, day time.Time) (*response.BookingDetailResponse, error)
	Cancel(ctx context.Context, bookingID int64, req *request.CancelBookingRequest, isBlock bool) (string, error)
	CalculatePrice(ctx context.Context, req *request.CalculatePriceRequest) (float64, error)
	CreateCheckoutSession(ctx context.Context, req *request.CheckoutSessionRequest) (string, error)
	CheckoutSuccess(ctx context.Context, sessionID string) (*entity.Booking, error)
	PaySplitShare(ctx context.Context, req *request.PaySplitShareRequest) error
}

type bookingService struct {
	bookings remote.BookingAPI
	log      *zap.Logger
}

func NewBookingService(bookings remote.BookingAPI, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) MyBookings(ctx context.Context) ([]entity.Booking, error) {
	return s.bookings.MyBookings(ctx)
}

func (s *bookingService) OwnerBookings(ctx context.Context) ([]entity.Booking, error) {
	return s.bookings.OwnerBookings(ctx)
}

func (s *bookingService) Detail(ctx context.Context, venueID, bookingID int64, day time.Time) (*response.BookingDetailResponse, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	bookings, err := s.bookings.Calendar(ctx, venueID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar for detail: %w", err)
	}

	for i := range bookings {
		if bookings[i].ID == bookingID {
			return response.BookingToDetail(&bookings[i]), nil
		}
	}

	return nil, fmt.Errorf("booking %d not found", bookingID)
}

// Cancel triggers the server-authoritative cancel. Blocks are simply
// freed; real bookings are refunded in full upstream. Both go through
// the same endpoint, only the returned copy differs.
func (s *bookingService) Cancel(ctx context.Context, bookingID int64, req *request.CancelBookingRequest, isBlock bool) (string, error) {
	if req == nil || !req.Confirm {
		return "", ErrConfirmationRequired
	}

	if err := s.bookings.Cancel(ctx, bookingID); err != nil {
		return "", err
	}

	s.log.Info("Booking cancelled",
		zap.Int64("booking_id", bookingID),
		zap.Bool("is_block", isBlock),
	)

	if isBlock {
		return "Slot unblocked", nil
	}
	return "Booking cancelled, the customer will be refunded in full", nil
}

func (s *bookingService) CalculatePrice(ctx context.Context, req *request.CalculatePriceRequest) (float64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return 0, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	return s.bookings.CalculatePrice(ctx, req)
}

func (s *bookingService) CreateCheckoutSession(ctx context.Context, req *request.CheckoutSessionRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkoutURL, err := s.bookings.CreateCheckoutSession(ctx, req)
	if err != nil {
		return "", err
	}

	s.log.Info("Checkout session created", zap.Int64("venue_id", req.VenueID))
	return checkoutURL, nil
}

func (s *bookingService) CheckoutSuccess(ctx context.Context, sessionID string) (*entity.Booking, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("invalid session id")
	}
	return s.bookings.CheckoutSuccess(ctx, sessionID)
}

func (s *bookingService) PaySplitShare(ctx context.Context, req *request.PaySplitShareRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	return s.bookings.PaySplitShare(ctx, req)
}
