package entity

// PricingRule is a venue-scoped multiplier over the base hourly price.
// The multiplier itself is applied server-side; the console only creates
// and deletes rules.
type PricingRule struct {
	ID         int64   `json:"id"`
	VenueID    int64   `json:"venueId"`
	DayOfWeek  *int    `json:"dayOfWeek,omitempty"` // 0=Sunday .. 6=Saturday, nil = every day
	StartHour  int     `json:"startHour"`
	EndHour    int     `json:"endHour"`
	Multiplier float64 `json:"multiplier"`
	Label      string  `json:"label,omitempty"`
}
