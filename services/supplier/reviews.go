package supplier

import (
	"context"
	"net/http"
	"net/url"

	"stayfront/models"
)

// HotelReviews fetches guest reviews for one hotel.
func (c *Client) HotelReviews(ctx context.Context, hotelID string) ([]models.Review, error) {
	q := url.Values{}
	q.Set("hotelId", hotelID)

	var data []models.Review
	if err := c.do(ctx, http.MethodGet, "/data/reviews", q, nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}
