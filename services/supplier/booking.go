package supplier

import (
	"context"
	"net/http"
	"time"

	"stayfront/models"
)

type prebookPayload struct {
	OfferID       string `json:"offerId"`
	UsePaymentSDK bool   `json:"usePaymentSdk"`
}

type prebookData struct {
	PrebookID     string `json:"prebookId"`
	TransactionID string `json:"transactionId"`
	Secret        string `json:"secretKey"`
	ExpiresAt     string `json:"expiresAt"`
	Sandbox       bool   `json:"sandbox"`
}

// Prebook locks the offered rate for the vendor-defined window. In the
// sandbox environment the response carries no payment secret and the
// booking can be finalized directly.
func (c *Client) Prebook(ctx context.Context, offerID string) (*models.PrebookSession, error) {
	payload := prebookPayload{OfferID: offerID, UsePaymentSDK: !c.sandbox}

	var data prebookData
	if err := c.do(ctx, http.MethodPost, "/rates/prebook", nil, payload, &data); err != nil {
		return nil, err
	}

	session := &models.PrebookSession{
		PrebookID:     data.PrebookID,
		TransactionID: data.TransactionID,
		PaymentSecret: data.Secret,
		Sandbox:       c.sandbox || data.Sandbox,
	}
	if t, err := time.Parse(time.RFC3339, data.ExpiresAt); err == nil {
		session.ExpiresAt = t
	}
	return session, nil
}

type bookPayload struct {
	PrebookID     string `json:"prebookId"`
	TransactionID string `json:"transactionId,omitempty"`
	Holder        struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"holder"`
	GuestComment string `json:"guestComment,omitempty"`
}

type bookingData struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	HotelID   string `json:"hotelId"`
	Hotel     struct {
		Name string `json:"name"`
	} `json:"hotel"`
	HotelConfirmationCode string `json:"hotelConfirmationCode"`
	Holder                struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"holder"`
	CheckIn   string `json:"checkin"`
	CheckOut  string `json:"checkout"`
	BookedRooms []struct {
		Name      string `json:"name"`
		BoardName string `json:"boardName"`
	} `json:"bookedRooms"`
	Price struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
	CancellationPolicies struct {
		RefundableTag     string `json:"refundableTag"`
		CancelPolicyInfos []struct {
			CancelTime string `json:"cancelTime"`
		} `json:"cancelPolicyInfos"`
	} `json:"cancellationPolicies"`
	CreatedAt string `json:"createdAt"`
}

func (d bookingData) toModel() *models.BookingRecord {
	rec := &models.BookingRecord{
		BookingID:     d.BookingID,
		Status:        d.Status,
		HotelID:       d.HotelID,
		HotelName:     d.Hotel.Name,
		FirstName:     d.Holder.FirstName,
		LastName:      d.Holder.LastName,
		Email:         d.Holder.Email,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Total:         d.Price.Amount,
		Currency:      d.Price.Currency,
		RefundableTag: d.CancellationPolicies.RefundableTag,
		CreatedAt:     d.CreatedAt,
	}
	if len(d.BookedRooms) > 0 {
		rec.RoomName = d.BookedRooms[0].Name
		rec.BoardName = d.BookedRooms[0].BoardName
	}
	if len(d.CancellationPolicies.CancelPolicyInfos) > 0 {
		rec.CancelDeadline = d.CancellationPolicies.CancelPolicyInfos[0].CancelTime
	}
	return rec
}

// Book finalizes a prebooked rate. A PrebookSession is consumed exactly once.
func (c *Client) Book(ctx context.Context, req models.BookRequest) (*models.BookingRecord, error) {
	payload := bookPayload{
		PrebookID:     req.PrebookID,
		TransactionID: req.TransactionID,
		GuestComment:  req.Guest.Remarks,
	}
	payload.Holder.FirstName = req.Guest.FirstName
	payload.Holder.LastName = req.Guest.LastName
	payload.Holder.Email = req.Guest.Email
	payload.Holder.Phone = req.Guest.Phone

	var data bookingData
	if err := c.do(ctx, http.MethodPost, "/rates/book", nil, payload, &data); err != nil {
		return nil, err
	}
	return data.toModel(), nil
}

// GetBooking retrieves a reservation by the platform's booking id.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	var data bookingData
	if err := c.do(ctx, http.MethodGet, "/bookings/"+bookingID, nil, nil, &data); err != nil {
		return nil, err
	}
	return data.toModel(), nil
}

// CancelBooking cancels a reservation. Eligibility is checked by the
// caller; the platform enforces its own policy regardless.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	var data bookingData
	if err := c.do(ctx, http.MethodDelete, "/bookings/"+bookingID, nil, nil, &data); err != nil {
		return nil, err
	}
	return data.toModel(), nil
}
