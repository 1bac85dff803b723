package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/common/logger"
	"github.com/spicepatrao/storefront-backend/controllers"
	"github.com/spicepatrao/storefront-backend/database"
	"github.com/spicepatrao/storefront-backend/repository"
	"github.com/spicepatrao/storefront-backend/routes"
	"github.com/spicepatrao/storefront-backend/services"
)

func main() {
	cfg := LoadConfig()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()
	log := logger.Log

	// --- Snapshot store ---
	var store database.SnapshotStore
	if cfg.RedisAddr != "" {
		client, err := database.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal("Redis connection failed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		store = database.NewRedisStore(client)
		log.Info("Using Redis snapshot store", zap.String("addr", cfg.RedisAddr))
	} else {
		fileStore, err := database.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatal("Data dir unavailable", zap.String("dir", cfg.DataDir), zap.Error(err))
		}
		store = fileStore
		log.Info("Using file snapshot store", zap.String("dir", cfg.DataDir))
	}

	// --- Repositories ---
	ctx := context.Background()
	data, err := repository.NewDataRepository(ctx, store, log)
	if err != nil {
		log.Fatal("Failed to load data snapshot", zap.Error(err))
	}
	carts := repository.NewCartRepository(store)
	sessions := repository.NewSessionRepository(store)

	// --- Services ---
	cartSvc := services.NewCartService(carts, data, log)
	catalogSvc := services.NewCatalogService(data, log)
	authSvc := services.NewAuthService(data, sessions, log)
	checkoutSvc := services.NewCheckoutService(cartSvc, data, sessions, log)
	analyticsSvc := services.NewAnalyticsService(data, data, data)
	imageSvc := services.NewImageService(
		data,
		services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel),
		cfg.ImageGenDelay,
		log,
	)

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.Register(
		r,
		authSvc,
		controllers.NewAuthController(authSvc),
		controllers.NewProductController(catalogSvc),
		controllers.NewCartController(cartSvc),
		controllers.NewOrderController(checkoutSvc),
		controllers.NewAdminController(catalogSvc, analyticsSvc, imageSvc, checkoutSvc),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Storefront backend listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
}
