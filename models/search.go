package models

// Occupancy describes one requested room.
type Occupancy struct {
	Adults   int   `json:"adults"`
	Children []int `json:"children,omitempty"` // ages
}

// SearchQuery holds the supplier-facing search parameters.
type SearchQuery struct {
	PlaceID     string      `json:"placeId,omitempty"`
	HotelIDs    []string    `json:"hotelIds,omitempty"`
	CheckIn     string      `json:"checkin"`  // YYYY-MM-DD
	CheckOut    string      `json:"checkout"` // YYYY-MM-DD
	Occupancies []Occupancy `json:"occupancies"`
	Currency    string      `json:"currency,omitempty"`
	GuestNation string      `json:"guestNationality,omitempty"`
	Timeout     float64     `json:"timeout,omitempty"` // seconds, passed through to the supplier
	Limit       int         `json:"limit,omitempty"`
}

// SearchFilters are applied locally after the supplier responds.
type SearchFilters struct {
	MinStars         int      `json:"minStars,omitempty"`
	MinPrice         float64  `json:"minPrice,omitempty"`
	MaxPrice         float64  `json:"maxPrice,omitempty"`
	BoardTypes       []string `json:"boardTypes,omitempty"`
	FreeCancellation bool     `json:"freeCancellation,omitempty"`
}

// SearchRequest is the payload coming from the frontend into /api/search.
type SearchRequest struct {
	Query    SearchQuery   `json:"query"`
	Filters  SearchFilters `json:"filters"`
	SortBy   string        `json:"sortBy,omitempty"` // "price_asc", "price_desc", "stars"
	Page     int           `json:"page,omitempty"`
	PageSize int           `json:"pageSize,omitempty"`
}

// HotelResult is one listing card: supplier rate data merged with hotel metadata.
type HotelResult struct {
	HotelID       string  `json:"hotelId"`
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	City          string  `json:"city,omitempty"`
	Country       string  `json:"country,omitempty"`
	Stars         int     `json:"stars,omitempty"`
	MainPhoto     string  `json:"mainPhoto,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	BoardName     string  `json:"boardName,omitempty"`
	RefundableTag string  `json:"refundableTag,omitempty"`
	ReviewScore   float64 `json:"reviewScore,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

// SearchResponse is the locally paginated listing.
type SearchResponse struct {
	Hotels       []HotelResult `json:"hotels"`
	TotalRecords int           `json:"totalRecords"`
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
}
