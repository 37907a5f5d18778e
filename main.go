package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayfront/config"
	"stayfront/cron"
	"stayfront/handlers"
	"stayfront/middleware"
	"stayfront/routes"
	"stayfront/services/checkout"
	"stayfront/services/concierge"
	"stayfront/services/hotel"
	"stayfront/services/popular"
	"stayfront/services/search"
	"stayfront/services/supplier"
	"stayfront/services/trip"
	"stayfront/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitSessionCache()
	utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.SessionCacheClient})

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.GeolocationMiddleware())

	// Supplier client.
	supplierClient := supplier.NewClient(
		config.AppConfig.SupplierBaseURL,
		config.AppConfig.SupplierAPIKey,
		config.AppConfig.SupplierSandbox,
		logger,
	)

	// Services.
	searchService := &search.DefaultSearchService{
		Supplier: supplierClient,
		Logger:   logger,
	}
	hotelService := &hotel.DefaultHotelService{
		Supplier: supplierClient,
		Cache:    utils.GetCacheClient(),
		Logger:   logger,
	}
	checkoutService := &checkout.DefaultCheckoutService{
		Supplier: supplierClient,
		Sessions: &checkout.RedisSessionStore{
			Client: utils.GetSessionCacheClient(),
			TTL:    time.Duration(config.AppConfig.CheckoutTTLMinutes) * time.Minute,
		},
		Payments: checkout.StripeVerifier{},
		Logger:   logger,
	}
	tripService := &trip.DefaultTripService{
		Supplier: supplierClient,
		Logger:   logger,
	}
	popularService := &popular.DefaultPopularService{
		Supplier:     supplierClient,
		Cache:        utils.GetCacheClient(),
		Destinations: config.AppConfig.PopularDestinations,
		Logger:       logger,
	}
	conciergeService, err := concierge.NewDefaultConciergeService(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		supplierClient,
		logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize concierge service: %v", err)
	}

	// Handlers.
	searchHandler := handlers.NewSearchHandler(searchService, logger)
	hotelHandler := handlers.NewHotelHandler(hotelService, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)
	tripHandler := handlers.NewTripHandler(tripService, logger)
	placesHandler := handlers.NewPlacesHandler(supplierClient, logger)
	popularHandler := handlers.NewPopularHandler(popularService, logger)
	conciergeHandler := handlers.NewConciergeHandler(conciergeService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SearchHandler: searchHandler.Search,

		GetHotelHandler:      hotelHandler.GetHotel,
		GetHotelRatesHandler: hotelHandler.GetRates,

		PlacesAutocompleteHandler: placesHandler.Autocomplete,
		GeolocateHandler:          handlers.Geolocate,
		PopularHandler:            popularHandler.GetPopular,

		CreateCheckoutHandler:  checkoutHandler.CreateSession,
		GetCheckoutHandler:     checkoutHandler.GetSession,
		SubmitGuestHandler:     checkoutHandler.SubmitGuest,
		CheckoutBackHandler:    checkoutHandler.Back,
		ConfirmCheckoutHandler: checkoutHandler.Confirm,

		GetBookingHandler:    tripHandler.GetBooking,
		CancelBookingHandler: tripHandler.CancelBooking,

		ChatHandler: conciergeHandler.Chat,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background refresh of the popular destinations feed.
	cron.InitPopularWorker(popularService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
