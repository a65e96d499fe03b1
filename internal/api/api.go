// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/api/handlers"
	"github.com/HJantango/wild-octave-august-sub004/internal/api/middleware"
	"github.com/HJantango/wild-octave-august-sub004/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Recommendations *service.RecommendationService
	Stock           *service.StockService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger("/health"))
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Recommendations != nil {
			orderHandler := handlers.NewOrderHandler(services.Recommendations)
			orderGroup := apiGroup.Group("/orders")
			{
				orderGroup.GET("/recommendations", orderHandler.GetRecommendations)
				orderGroup.GET("/reminders", orderHandler.GetReminders)
				orderGroup.GET("/time-of-day", orderHandler.GetTimeOfDay)
			}
		}

		if services.Stock != nil {
			stockHandler := handlers.NewStockHandler(services.Stock)
			stockGroup := apiGroup.Group("/stock")
			{
				stockGroup.GET("", stockHandler.List)
				stockGroup.DELETE("", stockHandler.Clear)
				stockGroup.GET("/:item_id", stockHandler.Get)
				stockGroup.PUT("/:item_id", stockHandler.Set)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		for _, part := range strings.Split(origin, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
