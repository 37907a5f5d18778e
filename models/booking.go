package models

// HotelContact is the non-critical enrichment shown on the booking screens.
type HotelContact struct {
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// BookingRecord is the confirmed reservation as held by the supplier.
// It is fetched on demand and never stored here.
type BookingRecord struct {
	BookingID      string        `json:"bookingId"`
	Status         string        `json:"status"` // "CONFIRMED", "CANCELLED", ...
	HotelID        string        `json:"hotelId"`
	HotelName      string        `json:"hotelName,omitempty"`
	RoomName       string        `json:"roomName,omitempty"`
	BoardName      string        `json:"boardName,omitempty"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email,omitempty"`
	CheckIn        string        `json:"checkin"`
	CheckOut       string        `json:"checkout"`
	Total          float64       `json:"total"`
	Currency       string        `json:"currency"`
	RefundableTag  string        `json:"refundableTag,omitempty"`
	CancelDeadline string        `json:"cancelDeadline,omitempty"` // RFC 3339
	CreatedAt      string        `json:"createdAt,omitempty"`
	Hotel          *HotelContact `json:"hotel,omitempty"`
	Cancellable    bool          `json:"cancellable"`
}

// BookRequest finalizes a prebooked rate with the supplier.
type BookRequest struct {
	PrebookID     string       `json:"prebookId"`
	TransactionID string       `json:"transactionId,omitempty"`
	Guest         GuestDetails `json:"guest"`
}
