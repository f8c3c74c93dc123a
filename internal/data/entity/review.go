package entity

import "time"

type Review struct {
	ID         int64     `json:"id"`
	VenueID    int64     `json:"venueId"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName,omitempty"`
	Rating     int       `json:"rating"` // 1-5
	Comment    string    `json:"comment"`
	OwnerReply string    `json:"ownerReply,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
