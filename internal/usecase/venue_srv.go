package usecase

import (
	"context"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"

	"go.uber.org/zap"
)

type VenueService interface {
	Search(ctx context.Context, search string) ([]entity.Venue, error)
	FindByID(ctx context.Context, venueID int64) (*entity.Venue, error)
	MyVenues(ctx context.Context) ([]entity.Venue, error)
	Sports(ctx context.Context, venueID int64) ([]entity.Sport, error)
}

type venueService struct {
	venues remote.VenueAPI
	log    *zap.Logger
}

func NewVenueService(venues remote.VenueAPI, log *zap.Logger) VenueService {
	return &venueService{
		venues: venues,
		log:    log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) Search(ctx context.Context, search string) ([]entity.Venue, error) {
	return s.venues.List(ctx, search)
}

func (s *venueService) FindByID(ctx context.Context, venueID int64) (*entity.Venue, error) {
	return s.venues.FindByID(ctx, venueID)
}

func (s *venueService) MyVenues(ctx context.Context) ([]entity.Venue, error) {
	return s.venues.MyVenues(ctx)
}

func (s *venueService) Sports(ctx context.Context, venueID int64) ([]entity.Sport, error) {
	return s.venues.Sports(ctx, venueID)
}
