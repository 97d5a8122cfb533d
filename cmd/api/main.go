package main

// @title Sankhya District Insights API
// @version 1.0.0
// @description Analytics service turning identity-system activity datasets into district
// @description stress scores, demographic zone views, anomaly reports and demand forecasts.
// @description
// @description Main capabilities:
// @description - District Stress Index scoring and ranking
// @description - Blue zone / digital exclusion zone classification
// @description - Update-volume anomaly detection and dead-center reports
// @description - Migration corridor estimation
// @description - 7-day demand forecast with resource recommendations

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

	_ "github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/docs"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/config"
	httpDelivery "github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/delivery/http"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/delivery/http/handler"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain/repository"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/logger"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/repository/cache"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/repository/csvstore"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/repository/postgres"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
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

	log.Info("Starting Sankhya District Insights")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_dir", cfg.Data.Dir),
	)

	// 3. Connect to Redis (optional, noop cache without it)
	cacheRepo := cache.NewNoopCache()
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
	} else {
		log.Info("Redis not configured, snapshot cache disabled")
	}

	// 4. Connect to PostgreSQL (optional, run history disabled without it)
	var snapshotRepo repository.SnapshotRepository
	if cfg.DatabaseEnabled() {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		snapshotRepo, err = postgres.NewSnapshotRepository(db, log)
		if err != nil {
			log.Fatal("Failed to initialize snapshot repository", zap.Error(err))
		}
	} else {
		log.Info("PostgreSQL not configured, run history disabled")
	}

	// 5. Initialize dataset store and data context
	datasetRepo := csvstore.NewStore(cfg.Data, log)
	dataContext := usecase.NewDataContext(datasetRepo, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	dashboardUC := usecase.NewDashboardUseCase(
		dataContext,
		cacheRepo,
		snapshotRepo,
		log,
		cfg.Cache.SnapshotTTL,
	)
	dsiUC := usecase.NewDsiUseCase(dataContext, log)
	demographicsUC := usecase.NewDemographicsUseCase(dataContext, log)
	migrationUC := usecase.NewMigrationUseCase(dataContext, log)
	anomalyUC := usecase.NewAnomalyUseCase(dataContext, log)
	forecastUC := usecase.NewForecastUseCase(dataContext, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)
	dsiHandler := handler.NewDsiHandler(dsiUC, log)
	demographicsHandler := handler.NewDemographicsHandler(demographicsUC, log)
	migrationHandler := handler.NewMigrationHandler(migrationUC, log)
	anomalyHandler := handler.NewAnomalyHandler(anomalyUC, log)
	forecastHandler := handler.NewForecastHandler(forecastUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		dashboardHandler,
		dsiHandler,
		demographicsHandler,
		migrationHandler,
		anomalyHandler,
		forecastHandler,
	)

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

	log.Info("Server stopped successfully")
}
