package main

// @title Itinerary Service API
// @version 1.0.0
// @description Предпросмотр маршрута запланированного дня списка.
// @description
// @description Основные возможности:
// @description - Упорядочивание мест дня по слотам, категориям и ручному порядку
// @description - Участки маршрута между соседними местами с расстоянием и временем в пути
// @description - Проверка метрик провайдера маршрутов перед отдачей клиенту

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/itinerary-service/docs/swagger"
	"github.com/itinerary-service/internal/config"
	httpDelivery "github.com/itinerary-service/internal/delivery/http"
	"github.com/itinerary-service/internal/delivery/http/handler"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/infrastructure/routing"
	"github.com/itinerary-service/internal/pkg/logger"
	"github.com/itinerary-service/internal/pkg/metrics"
	"github.com/itinerary-service/internal/repository/cache"
	"github.com/itinerary-service/internal/repository/postgres"
	"github.com/itinerary-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, zap.String("service", "itinerary-service"))
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Itinerary Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("routing_provider", cfg.Routing.Provider),
	)

	metrics.Register()

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Connect to Redis. The route cache is optional: without Redis every
	// preview goes to the provider.
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
	)
	if cfg.Cache.RouteCacheEnabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, route cache disabled", zap.Error(err))
		} else {
			cacheRepo = cache.NewCacheRepository(redisClient)
		}
	}

	// 5. Initialize Repositories
	listRepo := postgres.NewListRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)

	log.Info("Repositories initialized")

	// 6. Routing provider and use case
	provider := routing.NewProvider(cfg, cacheRepo, log)

	routePreviewUC := usecase.NewRoutePreviewUseCase(
		listRepo,
		scheduleRepo,
		placeRepo,
		provider,
		log,
		cfg.Routing.Timeout,
	)

	// 7. Initialize HTTP Handlers
	routePreviewHandler := handler.NewRoutePreviewHandler(routePreviewUC, log)
	deps := map[string]handler.Pinger{"postgres": db}
	if redisClient != nil {
		deps["redis"] = redisClient
	}
	healthHandler := handler.NewHealthHandler(deps, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, routePreviewHandler, healthHandler)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
