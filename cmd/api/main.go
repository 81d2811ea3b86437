package main

// @title Collisions Monitor API
// @version 1.0.0
// @description Дашборд по выгрузке ДТП SWITRS (Калифорния). Загружает снимок записей за историческое окно,
// @description фильтрует его по датам, округу, участникам и алкоголю и возвращает агрегированные показатели.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/collisions-monitor/docs"
	"github.com/collisions-monitor/internal/config"
	httpDelivery "github.com/collisions-monitor/internal/delivery/http"
	"github.com/collisions-monitor/internal/delivery/http/handler"
	"github.com/collisions-monitor/internal/domain"
	"github.com/collisions-monitor/internal/domain/repository"
	"github.com/collisions-monitor/internal/pkg/logger"
	"github.com/collisions-monitor/internal/repository/cache"
	"github.com/collisions-monitor/internal/repository/reference"
	"github.com/collisions-monitor/internal/repository/sqldb"
	"github.com/collisions-monitor/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Collisions Monitor")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// 3. Connect to the collision store
	db, err := sqldb.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to open collision store", zap.Error(err))
	}

	// 4. County reference
	counties, err := reference.NewLoader(cfg.Dataset.ReferenceFile, log).Load()
	if err != nil {
		log.Fatal("Failed to load county reference", zap.Error(err))
	}

	// 5. Load the snapshot once, before serving
	recordRepo := sqldb.NewRecordRepository(db)
	window := domain.DateWindow{Start: cfg.Dataset.WindowStart, End: cfg.Dataset.WindowEnd}
	source := usecase.NewRecordSource(recordRepo, window, log)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 5*time.Minute)
	if _, err := source.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatal("Failed to load collision records", zap.Error(err))
	}
	cancelLoad()

	checks := map[string]handler.HealthCheck{
		"database": recordRepo.Health,
	}

	// 6. Optional Redis cache
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg, log)
		if err != nil {
			log.Warn("Redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			cacheRepo = cache.NewCacheRepository(redisClient)
			checks["redis"] = redisClient.Health
		}
	}

	// 7. Use cases and handlers
	dashboardUC := usecase.NewDashboardUseCase(
		source,
		counties,
		cacheRepo,
		log,
		cfg.Cache.DashboardCacheTTL,
	)

	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)
	countyHandler := handler.NewCountyHandler(dashboardUC, log)
	healthHandler := handler.NewHealthHandler(checks, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		dashboardHandler,
		countyHandler,
		healthHandler,
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.Int("records", source.Report().Loaded),
		zap.Int("excluded", source.Report().Excluded),
	)

	// 9. Graceful shutdown
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
		log.Error("Failed to close collision store", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
