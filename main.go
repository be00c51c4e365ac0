package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/igorshiota/booking-app/config"
	"github.com/igorshiota/booking-app/database"
	catalogRepo "github.com/igorshiota/booking-app/database/repository/catalog"
	settingsRepo "github.com/igorshiota/booking-app/database/repository/settings"
	"github.com/igorshiota/booking-app/handlers"
	"github.com/igorshiota/booking-app/middleware"
	"github.com/igorshiota/booking-app/routes"
	"github.com/igorshiota/booking-app/services/booking"
	"github.com/igorshiota/booking-app/services/catalog"
	"github.com/igorshiota/booking-app/services/notification"
	"github.com/igorshiota/booking-app/services/storage"
	"github.com/igorshiota/booking-app/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to mongo: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Sugar().Errorf("main: mongo disconnect failed: %v", err)
		}
	}()
	db := mongoClient.Database(config.AppConfig.MongoDatabase)

	sessionCache, err := database.NewSessionCache(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to redis: %v", err)
	}
	defer sessionCache.Close()

	localStorage, err := storage.NewLocalStorage(config.AppConfig.UploadDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize image storage: %v", err)
	}

	notifier, err := notification.NewEmailJSNotificationService(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware(config.AppConfig.AllowedOrigin))

	// repositories.
	categoryRepo := catalogRepo.NewMongoCategoryRepo(db)
	serviceRepo := catalogRepo.NewMongoServiceRepo(db)
	providerRepo := catalogRepo.NewMongoProviderRepo(db)
	brandingRepo := settingsRepo.NewMongoSettingsRepo(db)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Categories: categoryRepo,
		Services:   serviceRepo,
		Providers:  providerRepo,
		Settings:   brandingRepo,
	}

	sessionStore := booking.NewRedisSessionStore(
		sessionCache,
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	bookingService := booking.NewDefaultBookingSessionService(sessionStore, catalogService, notifier)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Admin:   handlers.NewAdminHandler(catalogService, logger),
		Upload:  handlers.NewUploadHandler(localStorage, logger),
	}

	routes.SetupRoutes(router, handlerBundle)
	utils.StartHealthMonitor(sessionCache, mongoClient)

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
