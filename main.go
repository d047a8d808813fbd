package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablebook/config"
	"tablebook/database"
	bookingRepo "tablebook/database/repository/booking"
	"tablebook/handlers"
	"tablebook/middleware"
	"tablebook/routes"
	"tablebook/services/agent"
	"tablebook/services/realtime"
	"tablebook/services/weather"
	"tablebook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitEventsClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo(config.AppConfig.DatabaseName)

	// Services.
	events := realtime.NewRedisPublisher(utils.GetEventsClient(), logger)
	weatherService := weather.NewDefaultWeatherService(logger)
	agentService := &agent.DefaultAgentService{
		Store:     agent.NewInMemorySessionStore(),
		Extractor: agent.NewExtractor(),
		Responder: agent.NewResponder(rand.NewSource(time.Now().UnixNano())),
		Repo:      bookings,
		Logger:    logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Agent:   handlers.NewAgentHandler(agentService, events, logger),
		Booking: handlers.NewBookingHandler(bookings, events, logger),
		Weather: handlers.NewWeatherHandler(weatherService, events, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
