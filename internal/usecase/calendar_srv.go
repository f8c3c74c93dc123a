package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/calendar"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/response"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CalendarService interface {
	VenueCalendar(ctx context.Context, venueID int64, reference time.Time, mode calendar.ViewMode, sportID int64) (*response.CalendarResponse, error)
}

type calendarService struct {
	rmt    *remote.Remote
	config utils.CalendarConfig
	log    *zap.Logger
}

func NewCalendarService(rmt *remote.Remote, config utils.CalendarConfig, log *zap.Logger) CalendarService {
	return &calendarService{
		rmt:    rmt,
		config: config,
		log:    log.With(zap.String("service", "calendar")),
	}
}

// VenueCalendar fetches venue, sports and bookings concurrently and
// renders the grid. Venue and sports are decoration: their failures only
// degrade the header, never the grid. A booking fetch failure is fatal
// unless fail-open is configured, in which case the grid renders empty
// and the response is marked degraded.
func (s *calendarService) VenueCalendar(ctx context.Context, venueID int64, reference time.Time, mode calendar.ViewMode, sportID int64) (*response.CalendarResponse, error) {
	if mode != calendar.ViewDay && mode != calendar.ViewWeek {
		mode = calendar.ViewWeek
	}

	var (
		venue    *entity.Venue
		sports   []entity.Sport
		bookings []entity.Booking
		degraded bool
	)

	start, end := calendar.ViewRange(reference, mode)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := s.rmt.Venue.FindByID(gctx, venueID)
		if err != nil {
			s.log.Warn("Venue fetch failed, rendering without header",
				zap.Int64("venue_id", venueID), zap.Error(err))
			return nil
		}
		venue = found
		return nil
	})

	g.Go(func() error {
		found, err := s.rmt.Venue.Sports(gctx, venueID)
		if err != nil {
			s.log.Warn("Sports fetch failed, rendering without sport filter",
				zap.Int64("venue_id", venueID), zap.Error(err))
			return nil
		}
		sports = found
		return nil
	})

	g.Go(func() error {
		found, err := s.rmt.Booking.Calendar(gctx, venueID, start, end)
		if err != nil {
			if s.config.FailOpen {
				s.log.Warn("Booking fetch failed, rendering empty grid (fail-open)",
					zap.Int64("venue_id", venueID), zap.Error(err))
				degraded = true
				return nil
			}
			return fmt.Errorf("fetch calendar bookings: %w", err)
		}
		bookings = found
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	grid := calendar.BuildGrid(reference, mode, bookings, sportID)

	s.log.Info("Calendar rendered",
		zap.Int64("venue_id", venueID),
		zap.String("mode", string(mode)),
		zap.Int("bookings", len(bookings)),
		zap.Bool("degraded", degraded),
	)

	return &response.CalendarResponse{
		Venue:    venue,
		Sports:   sports,
		Grid:     grid,
		Degraded: degraded,
	}, nil
}
