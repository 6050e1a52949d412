// File: paguro/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paguro/config"
	"paguro/database"
	occupancyRepo "paguro/database/repository/occupancy"
	"paguro/handlers"
	"paguro/middleware"
	"paguro/routes"
	"paguro/services/conversation"
	ai "paguro/services/intelligence"
	"paguro/services/session"
	"paguro/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitResponseCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetResponseCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	occRepo := occupancyRepo.NewMongoOccupancyRepo()

	// services.
	sessionStore := session.NewRedisStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)

	geminiClient := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	responseCache := ai.NewResponseCache(utils.GetResponseCacheClient(), time.Hour)
	generator := ai.NewDefaultGeneratorService(
		geminiClient,
		responseCache,
		time.Duration(config.AppConfig.GeneratorTimeoutSeconds)*time.Second,
		logger,
	)

	conversationService := conversation.NewDefaultService(
		occRepo,
		sessionStore,
		generator,
		config.AppConfig.BookingPageURL,
		logger,
	)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Chat:      handlers.NewChatHandler(conversationService, logger),
		Occupancy: handlers.NewOccupancyHandler(occRepo),
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
