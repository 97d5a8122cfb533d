package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/config"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain/repository"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/logger"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/repository/cache"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/repository/csvstore"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/repository/postgres"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

// The pipeline command runs one batch build: load the CSVs, compute the full
// dashboard snapshot, write it to disk and, when configured, warm the Redis
// cache and record the run in Postgres.
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

	log.Info("Starting pipeline run",
		zap.String("data_dir", cfg.Data.Dir),
		zap.String("output", cfg.Pipeline.OutputPath),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// 3. Optional Redis cache
	cacheRepo := cache.NewNoopCache()
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	// 4. Optional Postgres run history
	var snapshotRepo repository.SnapshotRepository
	if cfg.DatabaseEnabled() {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer db.Close()

		snapshotRepo, err = postgres.NewSnapshotRepository(db, log)
		if err != nil {
			log.Fatal("Failed to initialize snapshot repository", zap.Error(err))
		}
	}

	// 5. Build the snapshot
	datasetRepo := csvstore.NewStore(cfg.Data, log)
	dataContext := usecase.NewDataContext(datasetRepo, log)
	dashboardUC := usecase.NewDashboardUseCase(
		dataContext,
		cacheRepo,
		snapshotRepo,
		log,
		cfg.Cache.SnapshotTTL,
	)

	run, snapshot, err := dashboardUC.RunPipeline(ctx)
	if err != nil {
		log.Fatal("Pipeline run failed", zap.Error(err))
	}

	// 6. Write the result document
	if err := writeSnapshot(cfg.Pipeline.OutputPath, snapshot); err != nil {
		log.Fatal("Failed to write snapshot", zap.Error(err))
	}

	log.Info("Pipeline run complete",
		zap.String("run_id", run.ID.String()),
		zap.Int("districts", run.TotalDistricts),
		zap.Float64("dsi_average", run.DsiAverage),
		zap.Int("stressed_districts", run.StressedDistricts),
		zap.String("output", cfg.Pipeline.OutputPath),
	)
}

func writeSnapshot(path string, snapshot interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
