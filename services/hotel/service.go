// Package hotel assembles the hotel detail page view model.
package hotel

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"stayfront/models"
	"stayfront/services/supplier"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	infoCachePrefix = "hotel:info:"
	infoCacheTTL    = 6 * time.Hour
)

// Service fetches and merges everything the hotel page renders.
type Service interface {
	Detail(ctx context.Context, hotelID string, q models.SearchQuery) (*models.HotelDetail, error)
	Rates(ctx context.Context, hotelID string, q models.SearchQuery) ([]models.RoomOffer, error)
}

type DefaultHotelService struct {
	Supplier supplier.API
	Cache    *redis.Client
	Logger   *zap.Logger
}

// Detail fetches metadata, reviews and rates concurrently and merges them.
// Metadata is the primary payload: if it cannot be fetched the page fails.
// Failed reviews are dropped silently; failed rates render as "no rooms".
func (s *DefaultHotelService) Detail(ctx context.Context, hotelID string, q models.SearchQuery) (*models.HotelDetail, error) {
	var (
		wg      sync.WaitGroup
		info    *models.HotelInfo
		infoErr error
		reviews []models.Review
		rooms   []models.RoomOffer
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		info, infoErr = s.cachedInfo(ctx, hotelID)
	}()
	go func() {
		defer wg.Done()
		var err error
		reviews, err = s.Supplier.HotelReviews(ctx, hotelID)
		if err != nil {
			s.Logger.Warn("review fetch failed", zap.String("hotelId", hotelID), zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		rooms, err = s.Rates(ctx, hotelID, q)
		if err != nil {
			s.Logger.Warn("room rates fetch failed", zap.String("hotelId", hotelID), zap.Error(err))
		}
	}()
	wg.Wait()

	if infoErr != nil {
		return nil, infoErr
	}

	if rooms == nil {
		rooms = []models.RoomOffer{}
	}
	return &models.HotelDetail{
		Info:    *info,
		Reviews: reviews,
		Rooms:   rooms,
	}, nil
}

// Rates fetches the bookable offers for one hotel.
func (s *DefaultHotelService) Rates(ctx context.Context, hotelID string, q models.SearchQuery) ([]models.RoomOffer, error) {
	q.PlaceID = ""
	q.HotelIDs = []string{hotelID}

	rates, err := s.Supplier.SearchRates(ctx, q)
	if err != nil {
		return nil, err
	}
	for _, hr := range rates {
		if hr.HotelID == hotelID {
			return hr.Offers, nil
		}
	}
	return []models.RoomOffer{}, nil
}

// cachedInfo serves hotel metadata from Redis when possible. Static
// metadata changes rarely, so a stale entry is acceptable for its TTL.
func (s *DefaultHotelService) cachedInfo(ctx context.Context, hotelID string) (*models.HotelInfo, error) {
	key := infoCachePrefix + hotelID
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var info models.HotelInfo
			if err := json.Unmarshal([]byte(data), &info); err == nil {
				return &info, nil
			}
		}
	}

	info, err := s.Supplier.HotelDetails(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if b, err := json.Marshal(info); err == nil {
			if err := s.Cache.Set(ctx, key, b, infoCacheTTL).Err(); err != nil {
				s.Logger.Warn("hotel info cache write failed", zap.Error(err))
			}
		}
	}
	return info, nil
}
