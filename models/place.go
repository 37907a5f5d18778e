package models

// Place is one destination suggestion from the supplier's autocomplete.
type Place struct {
	PlaceID          string  `json:"placeId"`
	DisplayName      string  `json:"displayName"`
	FormattedAddress string  `json:"formattedAddress,omitempty"`
	Country          string  `json:"country,omitempty"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
}

// PopularDestination is one entry of the cached home-page feed.
type PopularDestination struct {
	Name    string `json:"name"`
	PlaceID string `json:"placeId"`
	Country string `json:"country,omitempty"`
}
