package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

func fixtureDataContext(t *testing.T) *usecase.DataContext {
	t.Helper()
	mockDatasets := &MockDatasetRepository{}
	mockDatasets.On("LoadTables", mock.Anything).Return(fixtureTables(), nil)
	return usecase.NewDataContext(mockDatasets, zap.NewNop())
}

func TestDemographicsUseCase_Data(t *testing.T) {
	uc := usecase.NewDemographicsUseCase(fixtureDataContext(t), zap.NewNop())

	resp, err := uc.Data(context.Background())
	require.NoError(t, err)

	// The single fixture district sits at both quantile extremes, so it is
	// classified exactly once, as a blue zone.
	require.Len(t, resp.Zones, 1)
	assert.Equal(t, "Patna", resp.Zones[0].District)
	require.Len(t, resp.BlueZones, 1)
	assert.Equal(t, int64(900), resp.BlueZones[0].SeniorCount)
}

func TestMigrationUseCase_Flows(t *testing.T) {
	uc := usecase.NewMigrationUseCase(fixtureDataContext(t), zap.NewNop())

	resp, err := uc.Flows(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Corridors, len(analytics.DefaultCorridors))

	var total int64
	for _, c := range resp.Corridors {
		total += c.Volume
	}
	assert.Equal(t, total, resp.Summary.ActiveFlow)

	// Corridors with change > 20%: Bihar->Delhi (42) and UP->Maharashtra (28).
	assert.Equal(t, 2, resp.Summary.SurgeCorridors)
	assert.NotEmpty(t, resp.Summary.TopOrigin)
	assert.NotEmpty(t, resp.Summary.TopDestination)
}

func TestAnomalyUseCase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAnomalyUseCase(fixtureDataContext(t), zap.NewNop())

	t.Run("detect", func(t *testing.T) {
		// Fixture: population 10000 -> expected 500 updates, actual 300 is a
		// -40% deviation, right at the non-emit boundary.
		anomalies, err := uc.Detect(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, anomalies)
	})

	t.Run("dead centers", func(t *testing.T) {
		dead, err := uc.DeadCenters(ctx, 0)
		require.NoError(t, err)
		// A single district always sits in its own lowest decile.
		require.Len(t, dead, 1)
		assert.Equal(t, "Patna", dead[0].District)
	})

	t.Run("missing biometric dataset reports empty, not blanket drops", func(t *testing.T) {
		tables := fixtureTables()
		tables.Biometric.Rows = nil

		mockDatasets := &MockDatasetRepository{}
		mockDatasets.On("LoadTables", mock.Anything).Return(tables, nil)
		demoOnly := usecase.NewAnomalyUseCase(
			usecase.NewDataContext(mockDatasets, zap.NewNop()), zap.NewNop())

		anomalies, err := demoOnly.Detect(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, anomalies)

		dead, err := demoOnly.DeadCenters(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, dead)
	})
}

func TestForecastUseCase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewForecastUseCase(fixtureDataContext(t), zap.NewNop())

	t.Run("demand", func(t *testing.T) {
		resp, err := uc.Demand(ctx)
		require.NoError(t, err)

		require.Len(t, resp.Points, analytics.ForecastDays)

		var total int64
		for _, p := range resp.Points {
			total += p.Predicted
		}
		assert.Equal(t, total, resp.Summary.TotalPredicted)
		assert.GreaterOrEqual(t, resp.Summary.AvgConfidence, 0.65)
		assert.LessOrEqual(t, resp.Summary.AvgConfidence, 0.95)
	})

	t.Run("recommendations", func(t *testing.T) {
		recs, err := uc.Recommendations(ctx)
		require.NoError(t, err)
		// Never an error, even when every state is covered.
		assert.NotNil(t, recs)
	})
}
