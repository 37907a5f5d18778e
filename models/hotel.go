package models

// HotelInfo is the supplier's static metadata for one property.
type HotelInfo struct {
	HotelID     string   `json:"hotelId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Stars       int      `json:"stars,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
	MainPhoto   string   `json:"mainPhoto,omitempty"`
	Photos      []string `json:"photos,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	CheckInTime string   `json:"checkinTime,omitempty"`
	CheckOut    string   `json:"checkoutTime,omitempty"`
	ReviewScore float64  `json:"reviewScore,omitempty"`
	ReviewCount int      `json:"reviewCount,omitempty"`
}

// Review is one guest review as returned by the supplier.
type Review struct {
	AverageScore int    `json:"averageScore"`
	Country      string `json:"country,omitempty"`
	Type         string `json:"type,omitempty"`
	Name         string `json:"name,omitempty"`
	Date         string `json:"date,omitempty"`
	Headline     string `json:"headline,omitempty"`
	Pros         string `json:"pros,omitempty"`
	Cons         string `json:"cons,omitempty"`
}

// RoomOffer is one bookable rate for a room.
type RoomOffer struct {
	OfferID        string  `json:"offerId"`
	RoomName       string  `json:"roomName"`
	BoardName      string  `json:"boardName,omitempty"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	RefundableTag  string  `json:"refundableTag,omitempty"` // "RFN" or "NRFN"
	CancelDeadline string  `json:"cancelDeadline,omitempty"`
	MaxOccupancy   int     `json:"maxOccupancy,omitempty"`
}

// HotelRates groups the offers the supplier returned for one hotel.
type HotelRates struct {
	HotelID string      `json:"hotelId"`
	Offers  []RoomOffer `json:"offers"`
}

// HotelDetail is the merged view model for the hotel page.
type HotelDetail struct {
	Info    HotelInfo   `json:"info"`
	Reviews []Review    `json:"reviews,omitempty"`
	Rooms   []RoomOffer `json:"rooms"`
}
