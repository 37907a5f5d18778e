package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Search & listing.
	SearchHandler gin.HandlerFunc

	// Hotel detail.
	GetHotelHandler      gin.HandlerFunc
	GetHotelRatesHandler gin.HandlerFunc

	// Places & geo.
	PlacesAutocompleteHandler gin.HandlerFunc
	GeolocateHandler          gin.HandlerFunc
	PopularHandler            gin.HandlerFunc

	// Checkout flow.
	CreateCheckoutHandler  gin.HandlerFunc
	GetCheckoutHandler     gin.HandlerFunc
	SubmitGuestHandler     gin.HandlerFunc
	CheckoutBackHandler    gin.HandlerFunc
	ConfirmCheckoutHandler gin.HandlerFunc

	// Booking lookup & cancellation.
	GetBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// AI concierge.
	ChatHandler gin.HandlerFunc
}
