package main

import (
	"context"
	"festiva/api/routes"
	"festiva/internal/builder"
	"festiva/internal/shared/config"
	"festiva/internal/submission"
	"festiva/pkg/cache"
	"festiva/pkg/logger"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize Redis-backed catalog cache (optional)
	var cacheService cache.Service
	if cfg.Redis.Enabled {
		if err := cache.Init(cache.Config{
			Address:  cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}); err != nil {
			appLogger.Error("Failed to connect to Redis, continuing without catalog cache", slog.Any("error", err))
		} else {
			cacheService = cache.NewService(cache.Client())
			defer cache.Close()
			appLogger.Info("Redis catalog cache initialized", slog.String("addr", cfg.Redis.Addr))
		}
	} else {
		appLogger.Info("Redis disabled, catalog reads go straight to the event-data service")
	}

	// Initialize booking submission producer (optional)
	var producer submission.Producer
	if cfg.Kafka.Enabled {
		producerConfig := submission.DefaultKafkaProducerConfig()
		producerConfig.Brokers = cfg.Kafka.Brokers
		producerConfig.BookingTopic = cfg.Kafka.BookingTopic
		producerConfig.RetryMax = cfg.Kafka.RetryMax
		producerConfig.TimeoutMs = cfg.Kafka.TimeoutMs

		p, err := submission.NewKafkaBookingProducer(producerConfig)
		if err != nil {
			appLogger.Error("Failed to initialize booking producer", slog.Any("error", err))
			appLogger.Info("Continuing without producer - submissions will assemble payloads only")
		} else {
			producer = p
			defer func() {
				appLogger.Info("Stopping booking producer...")
				if err := producer.Close(); err != nil {
					appLogger.Error("Error stopping booking producer", slog.Any("error", err))
				}
			}()
			appLogger.Info("Booking submission producer initialized",
				slog.Any("brokers", cfg.Kafka.Brokers),
				slog.String("topic", cfg.Kafka.BookingTopic),
			)
		}
	} else {
		appLogger.Info("Kafka disabled, submissions will assemble payloads only")
	}

	// Setup router
	router := setupRouter(cfg, cacheService, producer)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("version", cfg.APIVersion),
			slog.Bool("catalog_cache", cacheService != nil),
			slog.Bool("booking_producer", producer != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, cacheService cache.Service, producer submission.Producer) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Custom binding validators for enum-valued request fields
	builder.RegisterValidations()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, cacheService, producer)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
