package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"

	"go.uber.org/zap"
)

type BookingAPI interface {
	MyBookings(ctx context.Context) ([]entity.Booking, error)
	OwnerBookings(ctx context.Context) ([]entity.Booking, error)
	Calendar(ctx context.Context, venueID int64, start, end time.Time) ([]entity.Booking, error)
	CreateWalkIn(ctx context.Context, venueID int64, payload any) (*entity.Booking, error)
	Cancel(ctx context.Context, bookingID int64) error
	CalculatePrice(ctx context.Context, payload any) (float64, error)
	CreateCheckoutSession(ctx context.Context, payload any) (string, error)
	CheckoutSuccess(ctx context.Context, sessionID string) (*entity.Booking, error)
	PaySplitShare(ctx context.Context, payload any) error
}

type bookingAPI struct {
	client *Client
	log    *zap.Logger
}

func NewBookingAPI(client *Client, log *zap.Logger) BookingAPI {
	return &bookingAPI{client: client, log: log.With(zap.String("api", "booking"))}
}

func (a *bookingAPI) MyBookings(ctx context.Context) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := a.client.do(ctx, http.MethodGet, "/api/bookings/my", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (a *bookingAPI) OwnerBookings(ctx context.Context) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := a.client.do(ctx, http.MethodGet, "/api/bookings/owner", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (a *bookingAPI) Calendar(ctx context.Context, venueID int64, start, end time.Time) ([]entity.Booking, error) {
	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", end.Format(time.RFC3339))

	var out struct {
		Bookings []entity.Booking `json:"bookings"`
	}

	path := fmt.Sprintf("/api/bookings/venue/%d/calendar", venueID)
	if err := a.client.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}

	return out.Bookings, nil
}

func (a *bookingAPI) CreateWalkIn(ctx context.Context, venueID int64, payload any) (*entity.Booking, error) {
	var booking entity.Booking
	path := fmt.Sprintf("/api/bookings/venue/%d/walk-in", venueID)
	if err := a.client.do(ctx, http.MethodPost, path, nil, payload, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (a *bookingAPI) Cancel(ctx context.Context, bookingID int64) error {
	path := fmt.Sprintf("/api/bookings/%d/cancel", bookingID)
	return a.client.do(ctx, http.MethodPatch, path, nil, nil, nil)
}

func (a *bookingAPI) CalculatePrice(ctx context.Context, payload any) (float64, error) {
	var out struct {
		Price float64 `json:"price"`
	}
	if err := a.client.do(ctx, http.MethodPost, "/api/bookings/calculate-price", nil, payload, &out); err != nil {
		return 0, err
	}
	return out.Price, nil
}

func (a *bookingAPI) CreateCheckoutSession(ctx context.Context, payload any) (string, error) {
	var out struct {
		CheckoutURL string `json:"checkoutUrl"`
	}
	if err := a.client.do(ctx, http.MethodPost, "/api/bookings/checkout-session", nil, payload, &out); err != nil {
		return "", err
	}
	return out.CheckoutURL, nil
}

func (a *bookingAPI) CheckoutSuccess(ctx context.Context, sessionID string) (*entity.Booking, error) {
	query := url.Values{}
	query.Set("session_id", sessionID)

	var booking entity.Booking
	if err := a.client.do(ctx, http.MethodGet, "/api/bookings/checkout-success", query, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (a *bookingAPI) PaySplitShare(ctx context.Context, payload any) error {
	return a.client.do(ctx, http.MethodPost, "/api/bookings/pay-split-share", nil, payload, nil)
}
