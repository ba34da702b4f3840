// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"festiva/internal/builder"
	"festiva/internal/catalog"
	"festiva/internal/shared/config"
	"festiva/internal/submission"
	"festiva/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	cache    cache.Service
	producer submission.Producer
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, cacheService cache.Service, producer submission.Producer) *Router {
	return &Router{
		config:   cfg,
		cache:    cacheService,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		catalogService := r.setupCatalogRoutes(api)
		r.setupBuilderRoutes(api, catalogService)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if r.cache != nil {
			if err := r.cache.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "unhealthy",
					"error":     err.Error(),
					"timestamp": time.Now(),
					"service":   "festiva-pricing",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "festiva-pricing",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes configures package/venue read routes and returns the
// catalog service for downstream injection
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) catalog.Service {
	client := catalog.NewClient(r.config.Catalog.BaseURL, r.config.Catalog.RequestTimeout)
	catalogService := catalog.NewService(client, r.cache, r.config.Catalog.CacheTTL)
	catalogController := catalog.NewController(catalogService)

	catalog.SetupCatalogRoutes(rg, catalogController)
	return catalogService
}

// setupBuilderRoutes configures event-builder session routes
func (r *Router) setupBuilderRoutes(rg *gin.RouterGroup, catalogService catalog.Service) {
	store := builder.NewStore()
	builderService := builder.NewService(catalogService, store, r.producer, r.config.Engine.CashBondAmount)
	builderController := builder.NewController(builderService)

	builder.SetupBuilderRoutes(rg, builderController)
}
