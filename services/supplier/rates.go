package supplier

import (
	"context"
	"net/http"

	"stayfront/models"
)

// Wire shapes for the platform's rate search. Only the fields the
// storefront renders are decoded; everything else stays opaque.
type rateSearchPayload struct {
	PlaceID          string             `json:"placeId,omitempty"`
	HotelIDs         []string           `json:"hotelIds,omitempty"`
	CheckIn          string             `json:"checkin"`
	CheckOut         string             `json:"checkout"`
	Occupancies      []models.Occupancy `json:"occupancies"`
	Currency         string             `json:"currency,omitempty"`
	GuestNationality string             `json:"guestNationality,omitempty"`
	Timeout          float64            `json:"timeout,omitempty"`
	Limit            int                `json:"limit,omitempty"`
}

type hotelRatesData struct {
	HotelID   string `json:"hotelId"`
	RoomTypes []struct {
		OfferID string `json:"offerId"`
		Rates   []struct {
			Name       string `json:"name"`
			BoardName  string `json:"boardName"`
			RetailRate struct {
				Total []struct {
					Amount   float64 `json:"amount"`
					Currency string  `json:"currency"`
				} `json:"total"`
			} `json:"retailRate"`
			CancellationPolicies struct {
				RefundableTag     string `json:"refundableTag"`
				CancelPolicyInfos []struct {
					CancelTime string `json:"cancelTime"`
				} `json:"cancelPolicyInfos"`
			} `json:"cancellationPolicies"`
			MaxOccupancy int `json:"maxOccupancy"`
		} `json:"rates"`
	} `json:"roomTypes"`
}

// SearchRates runs the platform's rate search for a place or explicit
// hotel ids. The timeout parameter is passed through untouched.
func (c *Client) SearchRates(ctx context.Context, q models.SearchQuery) ([]models.HotelRates, error) {
	payload := rateSearchPayload{
		PlaceID:          q.PlaceID,
		HotelIDs:         q.HotelIDs,
		CheckIn:          q.CheckIn,
		CheckOut:         q.CheckOut,
		Occupancies:      q.Occupancies,
		Currency:         q.Currency,
		GuestNationality: q.GuestNation,
		Timeout:          q.Timeout,
		Limit:            q.Limit,
	}

	var data []hotelRatesData
	if err := c.do(ctx, http.MethodPost, "/hotels/rates", nil, payload, &data); err != nil {
		return nil, err
	}

	results := make([]models.HotelRates, 0, len(data))
	for _, h := range data {
		hr := models.HotelRates{HotelID: h.HotelID}
		for _, rt := range h.RoomTypes {
			for _, r := range rt.Rates {
				offer := models.RoomOffer{
					OfferID:       rt.OfferID,
					RoomName:      r.Name,
					BoardName:     r.BoardName,
					RefundableTag: r.CancellationPolicies.RefundableTag,
					MaxOccupancy:  r.MaxOccupancy,
				}
				if len(r.RetailRate.Total) > 0 {
					offer.Price = r.RetailRate.Total[0].Amount
					offer.Currency = r.RetailRate.Total[0].Currency
				}
				if len(r.CancellationPolicies.CancelPolicyInfos) > 0 {
					offer.CancelDeadline = r.CancellationPolicies.CancelPolicyInfos[0].CancelTime
				}
				hr.Offers = append(hr.Offers, offer)
			}
		}
		if len(hr.Offers) > 0 {
			results = append(results, hr)
		}
	}
	return results, nil
}
