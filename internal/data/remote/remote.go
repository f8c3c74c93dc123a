package remote

import (
	"go.uber.org/zap"
)

// Remote groups every upstream API surface, mirroring the marketplace
// backend contract one interface per resource.
type Remote struct {
	Session      SessionAPI
	Venue        VenueAPI
	Booking      BookingAPI
	Pricing      PricingAPI
	Review       ReviewAPI
	Wallet       WalletAPI
	Analytics    AnalyticsAPI
	Notification NotificationAPI
}

func NewRemote(client *Client, log *zap.Logger) *Remote {
	return &Remote{
		Session:      NewSessionAPI(client, log),
		Venue:        NewVenueAPI(client, log),
		Booking:      NewBookingAPI(client, log),
		Pricing:      NewPricingAPI(client, log),
		Review:       NewReviewAPI(client, log),
		Wallet:       NewWalletAPI(client, log),
		Analytics:    NewAnalyticsAPI(client, log),
		Notification: NewNotificationAPI(client, log),
	}
}
