package search

import (
	"sort"
	"strings"

	"stayfront/models"
)

// applyFilters keeps the cards matching every requested filter.
func applyFilters(hotels []models.HotelResult, f models.SearchFilters) []models.HotelResult {
	filtered := hotels[:0]
	for _, h := range hotels {
		if f.MinStars > 0 && h.Stars < f.MinStars {
			continue
		}
		if f.MinPrice > 0 && h.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && h.Price > f.MaxPrice {
			continue
		}
		if len(f.BoardTypes) > 0 && !matchesBoard(h.BoardName, f.BoardTypes) {
			continue
		}
		if f.FreeCancellation && h.RefundableTag != "RFN" {
			continue
		}
		filtered = append(filtered, h)
	}
	return filtered
}

func matchesBoard(boardName string, wanted []string) bool {
	for _, w := range wanted {
		if strings.EqualFold(boardName, w) {
			return true
		}
	}
	return false
}

// sortResults orders the listing in place. Unknown sort keys leave the
// supplier's order untouched.
func sortResults(hotels []models.HotelResult, sortBy string) {
	switch sortBy {
	case "price_asc":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Price < hotels[j].Price })
	case "price_desc":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Price > hotels[j].Price })
	case "stars":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Stars > hotels[j].Stars })
	case "rating":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].ReviewScore > hotels[j].ReviewScore })
	}
}

// paginate slices one page out of the full listing.
func paginate(hotels []models.HotelResult, page, pageSize int) []models.HotelResult {
	start := (page - 1) * pageSize
	if start >= len(hotels) {
		return []models.HotelResult{}
	}
	end := start + pageSize
	if end > len(hotels) {
		end = len(hotels)
	}
	return hotels[start:end]
}
