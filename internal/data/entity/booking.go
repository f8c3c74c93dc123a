package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusBlocked   BookingStatus = "BLOCKED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// Booking covers online bookings, walk-ins and maintenance blocks. The
// time range is half-open: [StartTime, EndTime). Walk-ins carry guest
// fields instead of a user reference; blocks carry neither.
type Booking struct {
	ID            int64         `json:"id"`
	VenueID       int64         `json:"venueId"`
	CourtID       *int64        `json:"courtId,omitempty"`
	SportID       *int64        `json:"sportId,omitempty"`
	SportName     string        `json:"sportName,omitempty"`
	UserID        *int64        `json:"userId,omitempty"`
	UserName      string        `json:"userName,omitempty"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TotalAmount   float64       `json:"totalAmount"`
	IsInitiator   *bool         `json:"isInitiator,omitempty"`
	ShareAmount   *float64      `json:"shareAmount,omitempty"`
	GuestName     string        `json:"guestName,omitempty"`
	GuestEmail    string        `json:"guestEmail,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// IsBlock reports whether the entry only marks the slot unavailable.
func (b *Booking) IsBlock() bool {
	return b.Status == BookingStatusBlocked
}

// IsWalkIn reports whether the booking was created at the venue for an
// in-person customer.
func (b *Booking) IsWalkIn() bool {
	return b.Status != BookingStatusBlocked && b.UserID == nil && b.GuestName != ""
}
