package models

import "time"

// Checkout steps. The flow only ever moves guest -> payment and back.
const (
	StepGuest   = "guest"
	StepPayment = "payment"
	StepDone    = "done"
)

// GuestDetails are the fields collected on the guest step.
type GuestDetails struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Remarks       string `json:"remarks,omitempty"`
	AcceptedTerms bool   `json:"acceptedTerms"`
}

// BookingDraft is the room selection carried from the hotel page into checkout.
type BookingDraft struct {
	OfferID        string  `json:"offerId" binding:"required"`
	HotelID        string  `json:"hotelId" binding:"required"`
	HotelName      string  `json:"hotelName"`
	RoomName       string  `json:"roomName"`
	BoardName      string  `json:"boardName,omitempty"`
	CheckIn        string  `json:"checkin"`
	CheckOut       string  `json:"checkout"`
	Adults         int     `json:"adults"`
	Children       int     `json:"children,omitempty"`
	Total          float64 `json:"total"`
	Currency       string  `json:"currency"`
	RefundableTag  string  `json:"refundableTag,omitempty"`
	CancelDeadline string  `json:"cancelDeadline,omitempty"`
}

// PrebookSession mirrors the supplier's short-lived rate lock.
type PrebookSession struct {
	PrebookID     string    `json:"prebookId"`
	TransactionID string    `json:"transactionId,omitempty"`
	PaymentSecret string    `json:"paymentSecret,omitempty"`
	Sandbox       bool      `json:"sandbox"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// CheckoutSession holds the two-step checkout state between requests.
type CheckoutSession struct {
	ID        string          `json:"id"`
	Step      string          `json:"step"`
	Draft     BookingDraft    `json:"draft"`
	Guest     *GuestDetails   `json:"guest,omitempty"`
	Prebook   *PrebookSession `json:"prebook,omitempty"`
	BookingID string          `json:"bookingId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
