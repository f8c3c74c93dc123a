package response

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
)

// BookingDetailResponse is the read-only snapshot shown before a cancel.
type BookingDetailResponse struct {
	Booking  *entity.Booking `json:"booking"`
	Customer string          `json:"customer,omitempty"`
	IsBlock  bool            `json:"isBlock"`
}

func BookingToDetail(booking *entity.Booking) *BookingDetailResponse {
	customer := booking.UserName
	if booking.GuestName != "" {
		customer = booking.GuestName
	}

	return &BookingDetailResponse{
		Booking:  booking,
		Customer: customer,
		IsBlock:  booking.IsBlock(),
	}
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type PriceResponse struct {
	Price float64 `json:"price"`
}

type TopupResponse struct {
	ClientSecret string `json:"clientSecret"`
}
