package api

import (
	"github.com/agentbench/agentbench-api/internal/api/handlers"
	apimiddleware "github.com/agentbench/agentbench-api/internal/api/middleware"
	"github.com/agentbench/agentbench-api/internal/config"
	"github.com/agentbench/agentbench-api/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(svc *services.TestService, db *gorm.DB, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.AllowedOrigin))

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)

	// Runtime metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	{
		// Test execution
		testsHandler := handlers.NewTestsHandler(svc)
		v1.POST("/tests", testsHandler.Run)

		// Results and rankings
		resultsHandler := handlers.NewResultsHandler(svc)
		v1.GET("/results", resultsHandler.List)
		v1.GET("/agents", resultsHandler.Profiles)
		v1.GET("/comparison", resultsHandler.Comparison)
		v1.GET("/stats", resultsHandler.Stats)
		v1.GET("/history", resultsHandler.History)

		// Catalog
		v1.GET("/task-types", handlers.TaskTypes)
		v1.GET("/providers", handlers.Providers)
	}

	return router
}
