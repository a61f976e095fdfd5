package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gmaps-business-provider/internal/app"
	"github.com/gmaps-business-provider/internal/config"
	httpDelivery "github.com/gmaps-business-provider/internal/delivery/http"
	"github.com/gmaps-business-provider/internal/delivery/http/handler"
	"github.com/gmaps-business-provider/internal/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Google Maps Business Provider")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("google_base_url", cfg.Google.BaseURL),
	)

	// 3. Cache store, Google client, use cases, providers
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	application, err := app.New(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("Failed to close cache store", zap.Error(err))
		}
	}()

	// 4. Initialize HTTP Handlers
	providerHandler := handler.NewProviderHandler(application.Registry, log)
	tileHandler := handler.NewTileHandler(application.Registry, log)
	geocodingHandler := handler.NewGeocodingHandler(application.GeocodingUC, application.RoutingUC, log)

	log.Info("HTTP handlers initialized")

	// 5. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		providerHandler,
		tileHandler,
		geocodingHandler,
		application.Credentials.Active,
		application.CacheHealth,
	)

	// 6. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
