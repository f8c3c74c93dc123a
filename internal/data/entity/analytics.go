package entity

// OwnerSummary is the aggregated dashboard view for a venue owner.
type OwnerSummary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalBookings  int     `json:"totalBookings"`
	ActiveVenues   int     `json:"activeVenues"`
	AverageRating  float64 `json:"averageRating"`
	PendingPayouts float64 `json:"pendingPayouts"`
}

// OwnerDetailed carries per-venue breakdown rows.
type OwnerDetailed struct {
	Venues []VenueAnalytics `json:"venues"`
}

type VenueAnalytics struct {
	VenueID   int64   `json:"venueId"`
	VenueName string  `json:"venueName"`
	Revenue   float64 `json:"revenue"`
	Bookings  int     `json:"bookings"`
	Occupancy float64 `json:"occupancy"`
}
