// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HJantango/wild-octave-august-sub004/internal/api"
	"github.com/HJantango/wild-octave-august-sub004/internal/cache"
	"github.com/HJantango/wild-octave-august-sub004/internal/config"
	"github.com/HJantango/wild-octave-august-sub004/internal/repository/postgres"
	"github.com/HJantango/wild-octave-august-sub004/internal/service"
	"github.com/HJantango/wild-octave-august-sub004/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.Configure(cfg.Server.Mode, os.Stdout)
	logger.SetLevel(logLevelFor(cfg.Server.Mode))
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	stockStore, err := cache.NewStockStore(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Stock cache unavailable, falling back to in-memory store")
		stockStore = cache.NewMemoryStockStore()
	}

	// Initialize services
	stockService := service.NewStockService(stockStore)
	recommendationService := service.NewRecommendationService(
		postgres.NewSalesRepository(db),
		postgres.NewSettingsRepository(db),
		stockService.Store(),
		cfg.Ordering,
		nil,
	)

	router := api.NewRouter(&api.Services{
		Recommendations: recommendationService,
		Stock:           stockService,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

func logLevelFor(mode string) string {
	if mode == "debug" {
		return "debug"
	}
	return "info"
}
