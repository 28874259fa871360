// File: tidybook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tidybook/config"
	"tidybook/cron"
	"tidybook/database"
	orderRepo "tidybook/database/repository/order"
	prefsRepo "tidybook/database/repository/preferences"
	"tidybook/handlers"
	"tidybook/middleware"
	"tidybook/routes"
	"tidybook/services/catalog"
	checkoutSvc "tidybook/services/checkout"
	"tidybook/services/pricing"
	"tidybook/services/quote"
	"tidybook/services/support"
	"tidybook/services/terms"
	"tidybook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQuoteCache()
	utils.InitTermsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	ordersRepo := orderRepo.NewMongoOrderRepo()
	preferencesRepo := prefsRepo.NewMongoPreferencesRepo()

	// services.
	roomCatalog := catalog.NewStaticCatalog()
	pricingService := &pricing.DefaultPricingService{
		Catalog: roomCatalog,
		Logger:  logger,
	}

	followupClient := cron.NewFollowupClient()
	quoteService := &quote.DefaultQuoteSessionService{
		Store:      quote.NewRedisSessionStore(utils.GetQuoteCacheClient(), 45*time.Minute),
		PricingSvc: pricingService,
		PrefsRepo:  preferencesRepo,
		Followups:  followupClient,
		Logger:     logger,
	}

	termsService := &terms.DefaultTermsService{
		Cache: utils.GetTermsCacheClient(),
	}
	supportService := &support.DefaultSupportService{}

	checkoutService := &checkoutSvc.DefaultCheckoutService{
		QuoteSvc: quoteService,
		TermsSvc: termsService,
		Catalog:  roomCatalog,
		Payments: &checkoutSvc.StripePaymentProcessor{Logger: logger},
		Orders:   ordersRepo,
		Logger:   logger,
	}

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(roomCatalog, pricingService, logger)
	quoteHandler := handlers.NewQuoteHandler(quoteService, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)
	ordersHandler := handlers.NewOrdersHandler(ordersRepo, logger)
	termsHandler := handlers.NewTermsHandler(termsService, logger)
	supportHandler := handlers.NewSupportHandler(supportService, logger)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListRoomsHandler:             catalogHandler.ListRoomsHandler,
		GetRoomTiersHandler:          catalogHandler.GetRoomTiersHandler,
		GetRoomAddOnsHandler:         catalogHandler.GetRoomAddOnsHandler,
		GetRoomReductionsHandler:     catalogHandler.GetRoomReductionsHandler,
		EvaluateCompatibilityHandler: catalogHandler.EvaluateCompatibilityHandler,
		UpdateRoomRatesHandler:       catalogHandler.UpdateRoomRatesHandler,

		// Quote wizard endpoints.
		InitiateQuoteHandler:         quoteHandler.InitiateQuoteHandler,
		GetQuoteHandler:              quoteHandler.GetQuoteHandler,
		UpdateQuoteHandler:           quoteHandler.UpdateQuoteHandler,
		SaveRoomConfigurationHandler: quoteHandler.SaveRoomConfigurationHandler,
		CompleteQuoteHandler:         quoteHandler.CompleteQuoteHandler,
		CancelQuoteHandler:           quoteHandler.CancelQuoteHandler,

		// Checkout endpoints.
		ConfirmCheckoutHandler: checkoutHandler.ConfirmCheckoutHandler,

		// Order endpoints.
		GetOrderHandler:    ordersHandler.GetOrderHandler,
		ListOrdersHandler:  ordersHandler.ListOrdersHandler,
		CancelOrderHandler: ordersHandler.CancelOrderHandler,
		DeleteOrderHandler: ordersHandler.DeleteOrderHandler,

		// Terms endpoints.
		GetTermsHandler:    termsHandler.GetTermsHandler,
		AcceptTermsHandler: termsHandler.AcceptTermsHandler,
		TermsStatusHandler: termsHandler.TermsStatusHandler,

		// Support chat endpoints.
		SupportRootHandler:  supportHandler.SupportRootHandler,
		SupportReplyHandler: supportHandler.SupportReplyHandler,

		// Preferences endpoints.
		GetPreferencesHandler:    preferencesHandler.GetPreferencesHandler,
		UpdatePreferencesHandler: preferencesHandler.UpdatePreferencesHandler,
		DeletePreferencesHandler: preferencesHandler.DeletePreferencesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for manual-quote follow-ups.
	cron.InitFollowupWorker()

	// Periodic health snapshot for /health.
	utils.StartHealthMonitor(database.MongoClient)

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
