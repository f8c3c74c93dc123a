package entity

type Venue struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	PricePerHour float64  `json:"pricePerHour"`
	IsActive     bool     `json:"isActive"`
	ImageURLs    []string `json:"imageUrls"`
	Amenities    []string `json:"amenities"`
	Sports       []Sport  `json:"sports,omitempty"`
	OwnerID      int64    `json:"ownerId"`
	Rating       float64  `json:"rating,omitempty"`
	ReviewCount  int      `json:"reviewCount,omitempty"`
}

type Sport struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
