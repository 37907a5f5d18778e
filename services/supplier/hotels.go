package supplier

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"stayfront/models"

	"go.uber.org/zap"
)

// The platform rate-limits metadata lookups, so batched fetches go out
// in fixed-size chunks with a fixed pause between them.
const (
	detailBatchSize  = 5
	detailBatchDelay = 200 * time.Millisecond
)

type hotelInfoData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"hotelDescription"`
	Stars       int    `json:"starRating"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Location    struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	MainPhoto string `json:"main_photo"`
	Images    []struct {
		URL string `json:"url"`
	} `json:"hotelImages"`
	Facilities []struct {
		Name string `json:"name"`
	} `json:"hotelFacilities"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Times struct {
		CheckIn  string `json:"checkin"`
		CheckOut string `json:"checkout"`
	} `json:"checkinCheckoutTimes"`
	ReviewScore float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

func (d hotelInfoData) toModel() models.HotelInfo {
	info := models.HotelInfo{
		HotelID:     d.ID,
		Name:        d.Name,
		Description: d.Description,
		Stars:       d.Stars,
		Address:     d.Address,
		City:        d.City,
		Country:     d.Country,
		Latitude:    d.Location.Latitude,
		Longitude:   d.Location.Longitude,
		MainPhoto:   d.MainPhoto,
		Phone:       d.Phone,
		Email:       d.Email,
		CheckInTime: d.Times.CheckIn,
		CheckOut:    d.Times.CheckOut,
		ReviewScore: d.ReviewScore,
		ReviewCount: d.ReviewCount,
	}
	for _, img := range d.Images {
		info.Photos = append(info.Photos, img.URL)
	}
	for _, f := range d.Facilities {
		info.Facilities = append(info.Facilities, f.Name)
	}
	return info
}

// HotelDetails fetches static metadata for one hotel.
func (c *Client) HotelDetails(ctx context.Context, hotelID string) (*models.HotelInfo, error) {
	q := url.Values{}
	q.Set("hotelId", hotelID)

	var data hotelInfoData
	if err := c.do(ctx, http.MethodGet, "/data/hotel", q, nil, &data); err != nil {
		return nil, err
	}
	info := data.toModel()
	return &info, nil
}

// HotelDetailsBatch fetches metadata for many hotels, 5 at a time with a
// 200ms pause between batches. Individual failures are logged and the
// hotel is simply missing from the result map.
func (c *Client) HotelDetailsBatch(ctx context.Context, hotelIDs []string) (map[string]models.HotelInfo, error) {
	results := make(map[string]models.HotelInfo, len(hotelIDs))
	var mu sync.Mutex

	for start := 0; start < len(hotelIDs); start += detailBatchSize {
		end := start + detailBatchSize
		if end > len(hotelIDs) {
			end = len(hotelIDs)
		}

		var wg sync.WaitGroup
		for _, id := range hotelIDs[start:end] {
			wg.Add(1)
			go func(hotelID string) {
				defer wg.Done()
				info, err := c.HotelDetails(ctx, hotelID)
				if err != nil {
					c.logger.Warn("hotel details lookup failed",
						zap.String("hotelId", hotelID), zap.Error(err))
					return
				}
				mu.Lock()
				results[hotelID] = *info
				mu.Unlock()
			}(id)
		}
		wg.Wait()

		if end < len(hotelIDs) {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(detailBatchDelay):
			}
		}
	}
	return results, nil
}
