// Package popular maintains the cached home-page destination feed.
package popular

import (
	"context"
	"encoding/json"
	"fmt"

	"stayfront/models"
	"stayfront/services/supplier"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const feedKey = "popular:feed"

type Service interface {
	Get(ctx context.Context) ([]models.PopularDestination, error)
	Refresh(ctx context.Context) error
}

type DefaultPopularService struct {
	Supplier     supplier.API
	Cache        *redis.Client
	Destinations []string
	Logger       *zap.Logger
}

// Get serves the cached feed. An empty feed is normal before the first
// refresh has run.
func (s *DefaultPopularService) Get(ctx context.Context) ([]models.PopularDestination, error) {
	data, err := s.Cache.Get(ctx, feedKey).Result()
	if err == redis.Nil {
		return []models.PopularDestination{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("popular: read feed: %w", err)
	}

	var feed []models.PopularDestination
	if err := json.Unmarshal([]byte(data), &feed); err != nil {
		return nil, fmt.Errorf("popular: parse feed: %w", err)
	}
	return feed, nil
}

// Refresh resolves each configured destination to a place id and caches
// the result. Destinations that fail to resolve are skipped; the feed is
// replaced only when at least one resolved.
func (s *DefaultPopularService) Refresh(ctx context.Context) error {
	feed := make([]models.PopularDestination, 0, len(s.Destinations))
	for _, name := range s.Destinations {
		places, err := s.Supplier.SearchPlaces(ctx, name)
		if err != nil || len(places) == 0 {
			if err != nil {
				s.Logger.Warn("popular destination lookup failed",
					zap.String("destination", name), zap.Error(err))
			}
			continue
		}
		feed = append(feed, models.PopularDestination{
			Name:    places[0].DisplayName,
			PlaceID: places[0].PlaceID,
			Country: places[0].Country,
		})
	}

	if len(feed) == 0 {
		return fmt.Errorf("popular: no destinations resolved")
	}

	b, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("popular: marshal feed: %w", err)
	}
	if err := s.Cache.Set(ctx, feedKey, b, 0).Err(); err != nil {
		return fmt.Errorf("popular: store feed: %w", err)
	}
	s.Logger.Info("popular destinations refreshed", zap.Int("count", len(feed)))
	return nil
}
