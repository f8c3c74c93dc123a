package request

// CancelBookingRequest carries the confirmation gate for the one
// destructive action in the console. Without Confirm the cancel is
// rejected locally and nothing reaches the marketplace.
type CancelBookingRequest struct {
	Confirm bool `json:"confirm"`
}

type CalculatePriceRequest struct {
	VenueID   int64  `json:"venueId" validate:"required"`
	SportID   *int64 `json:"sportId,omitempty"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

type CheckoutSessionRequest struct {
	VenueID     int64    `json:"venueId" validate:"required"`
	SportID     *int64   `json:"sportId,omitempty"`
	StartTime   string   `json:"startTime" validate:"required"`
	EndTime     string   `json:"endTime" validate:"required"`
	UseWallet   bool     `json:"useWallet"`
	SplitEmails []string `json:"splitEmails,omitempty" validate:"omitempty,dive,email"`
}

type PaySplitShareRequest struct {
	BookingID int64 `json:"bookingId" validate:"required"`
}
