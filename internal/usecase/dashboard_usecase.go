package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain/repository"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase/dto"
)

// DashboardUseCase assembles the dashboard result document, serving it from
// the snapshot cache when possible. snapshotRepo may be nil; run history is
// then simply unavailable.
type DashboardUseCase struct {
	data         *DataContext
	cacheRepo    repository.CacheRepository
	snapshotRepo repository.SnapshotRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
	now          func() time.Time
}

func NewDashboardUseCase(
	data *DataContext,
	cacheRepo repository.CacheRepository,
	snapshotRepo repository.SnapshotRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *DashboardUseCase {
	return &DashboardUseCase{
		data:         data,
		cacheRepo:    cacheRepo,
		snapshotRepo: snapshotRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
		now:          time.Now,
	}
}

// Snapshot returns the dashboard document, rebuilding it on cache miss.
func (uc *DashboardUseCase) Snapshot(ctx context.Context) (*domain.DashboardSnapshot, error) {
	// 1. Check the cache
	cached, err := uc.cacheRepo.GetSnapshot(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("snapshot served from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("failed to read snapshot cache", zap.Error(err))
	}

	// 2. Rebuild from the datasets
	snapshot, err := uc.build(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Cache for the next request
	if err := uc.cacheRepo.SetSnapshot(ctx, snapshot, uc.cacheTTL); err != nil {
		uc.logger.Warn("failed to cache snapshot", zap.Error(err))
		// The document is already built, a cache failure is not fatal
	}

	return snapshot, nil
}

// KPIs returns the dashboard header summary.
func (uc *DashboardUseCase) KPIs(ctx context.Context) (*domain.KPIs, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot.KPIs, nil
}

// StressedDistricts returns the top stressed districts, highest DSI first.
func (uc *DashboardUseCase) StressedDistricts(ctx context.Context, limit int) ([]domain.DsiResult, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	results := snapshot.StressedDistricts
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// MapMarkers returns one marker per scored district.
func (uc *DashboardUseCase) MapMarkers(ctx context.Context) ([]domain.MapMarker, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.MapMarkers, nil
}

// Alerts synthesizes dashboard alerts from the detected anomalies.
func (uc *DashboardUseCase) Alerts(ctx context.Context) ([]dto.Alert, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.Alert, 0, len(snapshot.Anomalies))
	for _, a := range snapshot.Anomalies {
		title := "Update volume surge"
		if a.Type == domain.AnomalyDrop {
			title = "Update volume drop"
		}

		alerts = append(alerts, dto.Alert{
			ID:       uuid.New().String(),
			Severity: string(a.Severity),
			Title:    title,
			Message: fmt.Sprintf("%s, %s deviates %.1f%% from its expected update volume",
				a.District, a.State, a.DeviationPct),
			District: a.District,
			State:    a.State,
			Metric:   a.DeviationPct,
		})
	}
	return alerts, nil
}

// RunPipeline rebuilds the snapshot from the datasets, warms the cache and,
// when persistence is configured, records the run.
func (uc *DashboardUseCase) RunPipeline(ctx context.Context) (*domain.PipelineRun, *domain.DashboardSnapshot, error) {
	snapshot, err := uc.build(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.cacheRepo.SetSnapshot(ctx, snapshot, uc.cacheTTL); err != nil {
		uc.logger.Warn("failed to warm snapshot cache", zap.Error(err))
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	run := &domain.PipelineRun{
		ID:                uuid.New(),
		GeneratedAt:       snapshot.GeneratedAt,
		DsiAverage:        snapshot.KPIs.DsiAverage,
		StressedDistricts: snapshot.KPIs.StressedDistricts,
		CriticalDistricts: snapshot.KPIs.CriticalDistricts,
		TotalDistricts:    snapshot.KPIs.TotalDistricts,
		Snapshot:          raw,
	}

	if uc.snapshotRepo != nil {
		if err := uc.snapshotRepo.Save(ctx, run); err != nil {
			uc.logger.Warn("failed to persist pipeline run", zap.Error(err))
		}
	}

	return run, snapshot, nil
}

// RecentRuns lists the newest persisted runs. Without persistence the list
// is empty, not an error.
func (uc *DashboardUseCase) RecentRuns(ctx context.Context, limit int) ([]domain.PipelineRun, error) {
	if uc.snapshotRepo == nil {
		return []domain.PipelineRun{}, nil
	}
	return uc.snapshotRepo.ListRecent(ctx, limit)
}

func (uc *DashboardUseCase) build(ctx context.Context) (*domain.DashboardSnapshot, error) {
	tables, err := uc.data.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	started := uc.now()
	snapshot := analytics.BuildSnapshot(tables, nil, started.UTC())

	uc.logger.Info("snapshot built",
		zap.Int("districts", snapshot.KPIs.TotalDistricts),
		zap.Float64("dsi_average", snapshot.KPIs.DsiAverage),
		zap.Duration("took", time.Since(started)),
	)
	return snapshot, nil
}
