package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

func TestBuildSnapshot(t *testing.T) {
	now := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

	t.Run("empty tables yield empty views, never an error", func(t *testing.T) {
		snap := analytics.BuildSnapshot(domain.EmptyTables(), nil, now)

		require.NotNil(t, snap)
		assert.Zero(t, snap.KPIs.TotalDistricts)
		assert.Empty(t, snap.StressedDistricts)
		assert.Empty(t, snap.MapMarkers)
		assert.Empty(t, snap.ChildGaps)
		assert.Empty(t, snap.BlueZones)
		assert.Empty(t, snap.DeadCenters)
		assert.Empty(t, snap.Anomalies)

		// The corridor table and forecast are independent of district data.
		assert.Len(t, snap.MigrationCorridors, len(analytics.DefaultCorridors))
		assert.Len(t, snap.DemandForecast, analytics.ForecastDays)
		assert.Equal(t, now, snap.GeneratedAt)
	})

	t.Run("missing biometric dataset empties the volume views", func(t *testing.T) {
		tables := domain.EmptyTables()
		for _, district := range []string{"Patna", "Gaya", "Nalanda", "Bhagalpur", "Purnia"} {
			tables.Demographic.Rows = append(tables.Demographic.Rows, domain.Record{
				State:    "Bihar",
				District: district,
				Counts: map[string]float64{
					domain.ColDemoAge5_17: 4000,
					domain.ColDemoAge17:   6000,
				},
			})
		}

		snap := analytics.BuildSnapshot(tables, nil, now)

		// Districts still show up in the population views, but without
		// update volume nothing may be flagged as a drop or a dead center.
		assert.Equal(t, 5, snap.KPIs.TotalDistricts)
		assert.Len(t, snap.MapMarkers, 5)
		assert.Empty(t, snap.Anomalies)
		assert.Empty(t, snap.DeadCenters)
	})

	t.Run("nil tables behave like empty tables", func(t *testing.T) {
		snap := analytics.BuildSnapshot(nil, nil, now)

		require.NotNil(t, snap)
		assert.Zero(t, snap.KPIs.TotalDistricts)
	})

	t.Run("populated tables flow through every view", func(t *testing.T) {
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
			{
				State:    "Bihar",
				District: "Gaya",
				Counts: map[string]float64{
					domain.ColDemoAge5_17: 3000,
					domain.ColDemoAge17:   2000,
				},
			},
		}
		tables.Biometric.Rows = []domain.Record{
			{
				State:    "Bihar",
				District: "Patna",
				Counts: map[string]float64{
					domain.ColBioAge5_17: 200,
					domain.ColBioAge17:   300,
				},
			},
		}
		tables.Enrolment.Rows = []domain.Record{
			{
				State:    "Bihar",
				District: "Patna",
				Counts: map[string]float64{
					domain.ColEnrolAge0_5: 100,
				},
			},
		}

		snap := analytics.BuildSnapshot(tables, nil, now)

		assert.Equal(t, 2, snap.KPIs.TotalDistricts)
		assert.Len(t, snap.MapMarkers, 2)
		require.NotEmpty(t, snap.ChildGaps)
		assert.Equal(t, "Patna", snap.ChildGaps[0].District)

		// Bihar has live volume, so its corridor does not use the fallback.
		require.NotEmpty(t, snap.MigrationCorridors)
		assert.Equal(t, "Bihar", snap.MigrationCorridors[0].Origin)
	})
}
