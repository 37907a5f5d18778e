package supplier

import (
	"context"
	"net/http"
	"net/url"

	"stayfront/models"
)

type placeData struct {
	PlaceID          string `json:"placeId"`
	DisplayName      string `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
	Country          string `json:"country"`
	Location         struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
}

// SearchPlaces resolves free-text destinations to platform place ids.
func (c *Client) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	q := url.Values{}
	q.Set("textQuery", query)

	var data []placeData
	if err := c.do(ctx, http.MethodGet, "/data/places", q, nil, &data); err != nil {
		return nil, err
	}

	places := make([]models.Place, 0, len(data))
	for _, p := range data {
		places = append(places, models.Place{
			PlaceID:          p.PlaceID,
			DisplayName:      p.DisplayName,
			FormattedAddress: p.FormattedAddress,
			Country:          p.Country,
			Latitude:         p.Location.Latitude,
			Longitude:        p.Location.Longitude,
		})
	}
	return places, nil
}
