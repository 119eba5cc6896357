package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smartcoffeehub/backend/config"
	"github.com/smartcoffeehub/backend/internal/domain"
)

// SetupRouter creates and configures the Gin router. limiterStore holds the
// per-client rate limiters; nil disables rate limiting.
func SetupRouter(cfg *config.Config, handler *Handler, limiterStore domain.CacheRepository, logger *slog.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Operational endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limit := RateLimitMiddleware(limiterStore, cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Chat endpoint used by the storefront
	router.POST("/api/chat", limit, handler.Chat)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat", limit, handler.Chat)

		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/:slug", handler.GetProduct)
		}

		blog := v1.Group("/blog")
		{
			blog.GET("", handler.ListBlogPosts)
			blog.GET("/:slug", handler.GetBlogPost)
		}
	}

	return router
}
