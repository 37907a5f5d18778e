// Package suppliertest provides a function-field fake of the supplier
// API for service tests.
package suppliertest

import (
	"context"
	"errors"

	"stayfront/models"
)

// Fake implements supplier.API; unset methods return ErrNotConfigured.
type Fake struct {
	SearchPlacesFn      func(ctx context.Context, query string) ([]models.Place, error)
	SearchRatesFn       func(ctx context.Context, q models.SearchQuery) ([]models.HotelRates, error)
	HotelDetailsFn      func(ctx context.Context, hotelID string) (*models.HotelInfo, error)
	HotelDetailsBatchFn func(ctx context.Context, hotelIDs []string) (map[string]models.HotelInfo, error)
	HotelReviewsFn      func(ctx context.Context, hotelID string) ([]models.Review, error)
	PrebookFn           func(ctx context.Context, offerID string) (*models.PrebookSession, error)
	BookFn              func(ctx context.Context, req models.BookRequest) (*models.BookingRecord, error)
	GetBookingFn        func(ctx context.Context, bookingID string) (*models.BookingRecord, error)
	CancelBookingFn     func(ctx context.Context, bookingID string) (*models.BookingRecord, error)
}

var ErrNotConfigured = errors.New("suppliertest: method not configured")

func (f *Fake) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	if f.SearchPlacesFn == nil {
		return nil, ErrNotConfigured
	}
	return f.SearchPlacesFn(ctx, query)
}

func (f *Fake) SearchRates(ctx context.Context, q models.SearchQuery) ([]models.HotelRates, error) {
	if f.SearchRatesFn == nil {
		return nil, ErrNotConfigured
	}
	return f.SearchRatesFn(ctx, q)
}

func (f *Fake) HotelDetails(ctx context.Context, hotelID string) (*models.HotelInfo, error) {
	if f.HotelDetailsFn == nil {
		return nil, ErrNotConfigured
	}
	return f.HotelDetailsFn(ctx, hotelID)
}

func (f *Fake) HotelDetailsBatch(ctx context.Context, hotelIDs []string) (map[string]models.HotelInfo, error) {
	if f.HotelDetailsBatchFn == nil {
		return map[string]models.HotelInfo{}, nil
	}
	return f.HotelDetailsBatchFn(ctx, hotelIDs)
}

func (f *Fake) HotelReviews(ctx context.Context, hotelID string) ([]models.Review, error) {
	if f.HotelReviewsFn == nil {
		return nil, ErrNotConfigured
	}
	return f.HotelReviewsFn(ctx, hotelID)
}

func (f *Fake) Prebook(ctx context.Context, offerID string) (*models.PrebookSession, error) {
	if f.PrebookFn == nil {
		return nil, ErrNotConfigured
	}
	return f.PrebookFn(ctx, offerID)
}

func (f *Fake) Book(ctx context.Context, req models.BookRequest) (*models.BookingRecord, error) {
	if f.BookFn == nil {
		return nil, ErrNotConfigured
	}
	return f.BookFn(ctx, req)
}

func (f *Fake) GetBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	if f.GetBookingFn == nil {
		return nil, ErrNotConfigured
	}
	return f.GetBookingFn(ctx, bookingID)
}

func (f *Fake) CancelBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	if f.CancelBookingFn == nil {
		return nil, ErrNotConfigured
	}
	return f.CancelBookingFn(ctx, bookingID)
}
