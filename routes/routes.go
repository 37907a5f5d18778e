package routes

import (
	"net/http"
	"time"

	"stayfront/handlers"
	"stayfront/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes registers the listing and destination endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/search", hb.SearchHandler)
		api.GET("/places", hb.PlacesAutocompleteHandler)
		api.GET("/popular", hb.PopularHandler)
		api.GET("/geo", hb.GeolocateHandler)
	}
}

// RegisterHotelRoutes registers the hotel detail endpoints.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.GET("/:id", hb.GetHotelHandler)
		api.GET("/:id/rates", hb.GetHotelRatesHandler)
	}
}

// RegisterCheckoutRoutes sets up the two-step booking flow endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkoutGroup := r.Group("/api/checkout")
	{
		checkoutGroup.POST("", hb.CreateCheckoutHandler)
		checkoutGroup.GET("/:id", hb.GetCheckoutHandler)
		checkoutGroup.POST("/:id/guest", hb.SubmitGuestHandler)
		checkoutGroup.POST("/:id/back", hb.CheckoutBackHandler)
		checkoutGroup.POST("/:id/confirm", hb.ConfirmCheckoutHandler)
	}
}

// RegisterBookingRoutes registers lookup and cancellation.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.GET("/:id", hb.GetBookingHandler)
		bookingGroup.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterChatRoutes registers the AI concierge endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.ChatHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSearchRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
