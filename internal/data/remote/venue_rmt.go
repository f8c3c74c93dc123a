package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"

	"go.uber.org/zap"
)

type VenueAPI interface {
	List(ctx context.Context, search string) ([]entity.Venue, error)
	FindByID(ctx context.Context, venueID int64) (*entity.Venue, error)
	Create(ctx context.Context, payload any) (*entity.Venue, error)
	MyVenues(ctx context.Context) ([]entity.Venue, error)
	Sports(ctx context.Context, venueID int64) ([]entity.Sport, error)
}

type venueAPI struct {
	client *Client
	log    *zap.Logger
}

func NewVenueAPI(client *Client, log *zap.Logger) VenueAPI {
	return &venueAPI{client: client, log: log.With(zap.String("api", "venue"))}
}

func (a *venueAPI) List(ctx context.Context, search string) ([]entity.Venue, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}

	var venues []entity.Venue
	if err := a.client.do(ctx, http.MethodGet, "/api/venues", query, nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (a *venueAPI) FindByID(ctx context.Context, venueID int64) (*entity.Venue, error) {
	var venue entity.Venue
	path := fmt.Sprintf("/api/venues/%d", venueID)
	if err := a.client.do(ctx, http.MethodGet, path, nil, nil, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (a *venueAPI) Create(ctx context.Context, payload any) (*entity.Venue, error) {
	var venue entity.Venue
	if err := a.client.do(ctx, http.MethodPost, "/api/venues", nil, payload, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (a *venueAPI) MyVenues(ctx context.Context) ([]entity.Venue, error) {
	var venues []entity.Venue
	if err := a.client.do(ctx, http.MethodGet, "/api/venues/my-venues", nil, nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (a *venueAPI) Sports(ctx context.Context, venueID int64) ([]entity.Sport, error) {
	var sports []entity.Sport
	path := fmt.Sprintf("/api/venues/%d/sports", venueID)
	if err := a.client.do(ctx, http.MethodGet, path, nil, nil, &sports); err != nil {
		return nil, err
	}
	return sports, nil
}
