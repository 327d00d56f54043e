package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sgoyalsmvj/PixelTone/internal/api/handlers"
	apimiddleware "github.com/sgoyalsmvj/PixelTone/internal/api/middleware"
	"github.com/sgoyalsmvj/PixelTone/internal/config"
	"github.com/sgoyalsmvj/PixelTone/internal/metrics"
	"github.com/sgoyalsmvj/PixelTone/internal/nlp"
)

func SetupRouter(cfg *config.Config, metricsClient *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(version)
	router.GET("/health", healthHandler.HealthCheck)

	// NLP endpoints
	nlpHandler := handlers.NewNLPHandler(cfg, nlp.NewService(), metricsClient)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/parse", nlpHandler.Parse)
		v1.POST("/validate", nlpHandler.Validate)
		v1.POST("/suggestions", nlpHandler.Suggestions)
		v1.POST("/normalize", nlpHandler.Normalize)
		v1.POST("/intent", nlpHandler.Intent)
		v1.POST("/sentiment", nlpHandler.Sentiment)
	}

	return router
}
