package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

func fixtureTables() *domain.Tables {
	tables := domain.EmptyTables()
	tables.Demographic.Rows = []domain.Record{
		{
			State:    "Bihar",
			District: "Patna",
			Counts: map[string]float64{
				domain.ColDemoAge5_17: 4000,
				domain.ColDemoAge17:   6000,
			},
		},
	}
	tables.Biometric.Rows = []domain.Record{
		{
			State:    "Bihar",
			District: "Patna",
			Counts:   map[string]float64{domain.ColBioAge17: 300},
		},
	}
	return tables
}

func newDashboardUseCase(t *testing.T, cache *MockCacheRepository, snapshots *MockSnapshotRepository) *usecase.DashboardUseCase {
	t.Helper()

	mockDatasets := &MockDatasetRepository{}
	mockDatasets.On("LoadTables", mock.Anything).Return(fixtureTables(), nil)
	dc := usecase.NewDataContext(mockDatasets, zap.NewNop())

	// A typed nil would not compare equal to nil through the interface.
	if snapshots == nil {
		return usecase.NewDashboardUseCase(dc, cache, nil, zap.NewNop(), time.Hour)
	}
	return usecase.NewDashboardUseCase(dc, cache, snapshots, zap.NewNop(), time.Hour)
}

func TestDashboardUseCase_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the rebuild", func(t *testing.T) {
		cached := &domain.DashboardSnapshot{
			KPIs: domain.KPIs{TotalDistricts: 42},
		}
		mockCache := &MockCacheRepository{}
		mockCache.On("GetSnapshot", mock.Anything).Return(cached, nil).Once()

		uc := newDashboardUseCase(t, mockCache, nil)

		snap, err := uc.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 42, snap.KPIs.TotalDistricts)

		mockCache.AssertExpectations(t)
		mockCache.AssertNotCalled(t, "SetSnapshot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss rebuilds and caches", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("GetSnapshot", mock.Anything).Return(nil, nil).Once()
		mockCache.On("SetSnapshot", mock.Anything, mock.Anything, time.Hour).Return(nil).Once()

		uc := newDashboardUseCase(t, mockCache, nil)

		snap, err := uc.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.KPIs.TotalDistricts)
		require.Len(t, snap.MapMarkers, 1)
		assert.Equal(t, "Patna", snap.MapMarkers[0].District)

		mockCache.AssertExpectations(t)
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("GetSnapshot", mock.Anything).Return(nil, nil).Once()
		mockCache.On("SetSnapshot", mock.Anything, mock.Anything, time.Hour).
			Return(errors.New("redis down")).Once()

		uc := newDashboardUseCase(t, mockCache, nil)

		snap, err := uc.Snapshot(ctx)
		require.NoError(t, err)
		assert.NotNil(t, snap)
	})

	t.Run("cache read failure falls through to rebuild", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("GetSnapshot", mock.Anything).
			Return(nil, errors.New("redis down")).Once()
		mockCache.On("SetSnapshot", mock.Anything, mock.Anything, time.Hour).Return(nil).Once()

		uc := newDashboardUseCase(t, mockCache, nil)

		snap, err := uc.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.KPIs.TotalDistricts)
	})
}

func TestDashboardUseCase_StressedDistricts(t *testing.T) {
	cached := &domain.DashboardSnapshot{
		StressedDistricts: []domain.DsiResult{
			{District: "A", DSI: 9},
			{District: "B", DSI: 8},
			{District: "C", DSI: 7},
		},
	}
	mockCache := &MockCacheRepository{}
	mockCache.On("GetSnapshot", mock.Anything).Return(cached, nil)

	uc := newDashboardUseCase(t, mockCache, nil)

	results, err := uc.StressedDistricts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].District)
}

func TestDashboardUseCase_Alerts(t *testing.T) {
	cached := &domain.DashboardSnapshot{
		Anomalies: []domain.AnomalyRecord{
			{State: "Bihar", District: "Patna", DeviationPct: 70, Severity: domain.SeverityCritical, Type: domain.AnomalySurge},
			{State: "Bihar", District: "Gaya", DeviationPct: -45, Severity: domain.SeverityWarning, Type: domain.AnomalyDrop},
		},
	}
	mockCache := &MockCacheRepository{}
	mockCache.On("GetSnapshot", mock.Anything).Return(cached, nil)

	uc := newDashboardUseCase(t, mockCache, nil)

	alerts, err := uc.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.NotEmpty(t, alerts[0].ID)
	assert.NotEqual(t, alerts[0].ID, alerts[1].ID)
	assert.Equal(t, "critical", alerts[0].Severity)
	assert.Equal(t, "Update volume surge", alerts[0].Title)
	assert.Equal(t, "Update volume drop", alerts[1].Title)
	assert.Contains(t, alerts[0].Message, "Patna")
}

func TestDashboardUseCase_RunPipeline(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the run and warms the cache", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("SetSnapshot", mock.Anything, mock.Anything, time.Hour).Return(nil).Once()

		mockSnapshots := &MockSnapshotRepository{}
		mockSnapshots.On("Save", mock.Anything, mock.AnythingOfType("*domain.PipelineRun")).
			Return(nil).Once()

		uc := newDashboardUseCase(t, mockCache, mockSnapshots)

		run, snap, err := uc.RunPipeline(ctx)
		require.NoError(t, err)
		require.NotNil(t, snap)
		assert.Equal(t, snap.KPIs.TotalDistricts, run.TotalDistricts)
		assert.NotEmpty(t, run.Snapshot)

		mockCache.AssertExpectations(t)
		mockSnapshots.AssertExpectations(t)
	})

	t.Run("runs without persistence", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("SetSnapshot", mock.Anything, mock.Anything, time.Hour).Return(nil).Once()

		uc := newDashboardUseCase(t, mockCache, nil)

		run, _, err := uc.RunPipeline(ctx)
		require.NoError(t, err)
		assert.NotNil(t, run)
	})
}

func TestDashboardUseCase_RecentRuns(t *testing.T) {
	t.Run("empty without persistence", func(t *testing.T) {
		uc := newDashboardUseCase(t, &MockCacheRepository{}, nil)

		runs, err := uc.RecentRuns(context.Background(), 5)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		mockSnapshots := &MockSnapshotRepository{}
		mockSnapshots.On("ListRecent", mock.Anything, 5).
			Return([]domain.PipelineRun{{TotalDistricts: 3}}, nil).Once()

		uc := newDashboardUseCase(t, &MockCacheRepository{}, mockSnapshots)

		runs, err := uc.RecentRuns(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 3, runs[0].TotalDistricts)

		mockSnapshots.AssertExpectations(t)
	})
}
