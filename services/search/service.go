// Package search orchestrates the listing page: supplier rate search,
// batched metadata enrichment, then local filtering and pagination.
package search

import (
	"context"

	"stayfront/models"
	"stayfront/services/supplier"

	"go.uber.org/zap"
)

const defaultPageSize = 20

// Service produces the hotel listing for a search request.
type Service interface {
	Search(ctx context.Context, req models.SearchRequest) models.SearchResponse
}

type DefaultSearchService struct {
	Supplier supplier.API
	Logger   *zap.Logger
}

// Search never fails outward: availability gaps and upstream errors both
// surface as an empty result set, which the frontend renders as
// "no hotels found".
func (s *DefaultSearchService) Search(ctx context.Context, req models.SearchRequest) models.SearchResponse {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	empty := models.SearchResponse{
		Hotels:   []models.HotelResult{},
		Page:     page,
		PageSize: pageSize,
	}

	rates, err := s.Supplier.SearchRates(ctx, req.Query)
	if err != nil {
		s.Logger.Warn("rate search failed; returning empty listing", zap.Error(err))
		return empty
	}
	if len(rates) == 0 {
		return empty
	}

	hotelIDs := make([]string, 0, len(rates))
	for _, hr := range rates {
		hotelIDs = append(hotelIDs, hr.HotelID)
	}

	details, err := s.Supplier.HotelDetailsBatch(ctx, hotelIDs)
	if err != nil {
		// Partial metadata is fine; cards without it still carry price data.
		s.Logger.Warn("hotel details batch incomplete", zap.Error(err))
	}

	results := make([]models.HotelResult, 0, len(rates))
	for _, hr := range rates {
		cheapest := cheapestOffer(hr.Offers)
		if cheapest == nil {
			continue
		}
		card := models.HotelResult{
			HotelID:       hr.HotelID,
			Price:         cheapest.Price,
			Currency:      cheapest.Currency,
			BoardName:     cheapest.BoardName,
			RefundableTag: cheapest.RefundableTag,
		}
		if info, ok := details[hr.HotelID]; ok {
			card.Name = info.Name
			card.Address = info.Address
			card.City = info.City
			card.Country = info.Country
			card.Stars = info.Stars
			card.MainPhoto = info.MainPhoto
			card.Latitude = info.Latitude
			card.Longitude = info.Longitude
			card.ReviewScore = info.ReviewScore
			card.ReviewCount = info.ReviewCount
		}
		results = append(results, card)
	}

	results = applyFilters(results, req.Filters)
	sortResults(results, req.SortBy)

	total := len(results)
	return models.SearchResponse{
		Hotels:       paginate(results, page, pageSize),
		TotalRecords: total,
		Page:         page,
		PageSize:     pageSize,
	}
}

// cheapestOffer picks the lowest-priced offer as the card's headline rate.
func cheapestOffer(offers []models.RoomOffer) *models.RoomOffer {
	var best *models.RoomOffer
	for i := range offers {
		if best == nil || offers[i].Price < best.Price {
			best = &offers[i]
		}
	}
	return best
}
