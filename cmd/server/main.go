package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mohammadsaqib2064/onyx-aura/config"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/controller"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/repository"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/service"
	"github.com/mohammadsaqib2064/onyx-aura/internal/cache"
	"github.com/mohammadsaqib2064/onyx-aura/internal/db"
	"github.com/mohammadsaqib2064/onyx-aura/internal/middleware"
	"github.com/mohammadsaqib2064/onyx-aura/internal/router"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Onyx Aura API Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Connect to redis if configured. The catalog cache degrades to a
	// no-op when the client is nil, so a missing redis never blocks boot.
	var catalogCache *cache.CatalogCache
	if cfg.Redis.Enabled() {
		redisClient, err := redis.Connect(&cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			catalogCache = cache.NewCatalogCache(redisClient, cfg.Redis.CatalogTTL)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
	)
	productService := service.NewProductService(productRepo, catalogCache)
	reviewService := service.NewReviewService(reviewRepo, productRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	reviewController := controller.NewReviewController(reviewService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		reviewController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
