// Package trip serves the booking lookup and cancellation screens.
// The only authorization in the system is the last-name match: a wrong
// name is indistinguishable from an unknown booking id.
package trip

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"stayfront/models"
	"stayfront/services/supplier"

	"go.uber.org/zap"
)

// ErrBookingNotFound covers unknown ids and last-name mismatches alike.
var ErrBookingNotFound = errors.New("booking not found")

// ErrNotCancellable is returned when the rate is non-refundable or the
// cancellation deadline has passed.
var ErrNotCancellable = errors.New("booking is not cancellable")

type Service interface {
	Lookup(ctx context.Context, bookingID, lastName string) (*models.BookingRecord, error)
	Cancel(ctx context.Context, bookingID, lastName string) (*models.BookingRecord, error)
}

type DefaultTripService struct {
	Supplier supplier.API
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultTripService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Lookup fetches the booking, checks the last name case-insensitively
// and enriches the record with hotel contact details when possible.
func (s *DefaultTripService) Lookup(ctx context.Context, bookingID, lastName string) (*models.BookingRecord, error) {
	record, err := s.fetchVerified(ctx, bookingID, lastName)
	if err != nil {
		return nil, err
	}

	record.Cancellable = s.isCancellable(record)

	// Contact enrichment is cosmetic; a failure here never blocks the page.
	if record.HotelID != "" {
		info, err := s.Supplier.HotelDetails(ctx, record.HotelID)
		if err != nil {
			s.Logger.Warn("hotel contact enrichment failed",
				zap.String("bookingId", bookingID), zap.Error(err))
		} else {
			record.Hotel = &models.HotelContact{
				Phone:     info.Phone,
				Email:     info.Email,
				Address:   info.Address,
				Latitude:  info.Latitude,
				Longitude: info.Longitude,
			}
			if record.HotelName == "" {
				record.HotelName = info.Name
			}
		}
	}
	return record, nil
}

// Cancel checks eligibility locally and issues the vendor cancel call.
// There is no compensating logic: the vendor's answer is final.
func (s *DefaultTripService) Cancel(ctx context.Context, bookingID, lastName string) (*models.BookingRecord, error) {
	record, err := s.fetchVerified(ctx, bookingID, lastName)
	if err != nil {
		return nil, err
	}
	if !s.isCancellable(record) {
		return nil, ErrNotCancellable
	}

	cancelled, err := s.Supplier.CancelBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	cancelled.Cancellable = false
	return cancelled, nil
}

func (s *DefaultTripService) fetchVerified(ctx context.Context, bookingID, lastName string) (*models.BookingRecord, error) {
	if bookingID == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrBookingNotFound
	}

	record, err := s.Supplier.GetBooking(ctx, bookingID)
	if err != nil {
		// The vendor reports unknown bookings either as an HTTP 404 or as
		// its own code inside a 200 envelope.
		var apiErr *supplier.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.Status == http.StatusNotFound || apiErr.Code == supplier.CodeBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !strings.EqualFold(strings.TrimSpace(record.LastName), strings.TrimSpace(lastName)) {
		return nil, ErrBookingNotFound
	}
	return record, nil
}

// isCancellable derives eligibility from the refundable tag and the
// cancel deadline compared to now.
func (s *DefaultTripService) isCancellable(record *models.BookingRecord) bool {
	if record.Status == "CANCELLED" {
		return false
	}
	if record.RefundableTag != "RFN" {
		return false
	}
	if record.CancelDeadline == "" {
		return false
	}
	deadline, err := time.Parse(time.RFC3339, record.CancelDeadline)
	if err != nil {
		return false
	}
	return s.now().Before(deadline)
}
