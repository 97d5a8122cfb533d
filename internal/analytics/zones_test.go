package analytics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// fixture of 100 districts with strictly increasing adult ratio and
// activity per capita.
func zoneFixture() []domain.DistrictAggregate {
	aggs := make([]domain.DistrictAggregate, 100)
	for i := range aggs {
		aggs[i] = domain.DistrictAggregate{
			State:           "Bihar",
			District:        fmt.Sprintf("District %03d", i),
			TotalPopulation: 100,
			DemoAge17:       float64(i),
			BioRecords:      i,
		}
	}
	return aggs
}

func TestClassifyZones(t *testing.T) {
	t.Run("selects top and bottom 20 of a 100 row fixture", func(t *testing.T) {
		zones := analytics.ClassifyZones(zoneFixture())

		var blue, dez int
		for _, z := range zones {
			switch z.ZoneType {
			case domain.ZoneBlue:
				blue++
			case domain.ZoneDEZ:
				dez++
			}
		}

		assert.Equal(t, 20, blue)
		assert.Equal(t, 20, dez)
	})

	t.Run("blue zone wins when both predicates match", func(t *testing.T) {
		// Single district: trivially at both extremes of the distribution.
		aggs := []domain.DistrictAggregate{{
			State:           "Bihar",
			District:        "Patna",
			TotalPopulation: 100,
			DemoAge17:       90,
			BioRecords:      0,
		}}

		zones := analytics.ClassifyZones(aggs)

		require.Len(t, zones, 1)
		assert.Equal(t, domain.ZoneBlue, zones[0].ZoneType)
	})

	t.Run("blue zones listed before dez", func(t *testing.T) {
		zones := analytics.ClassifyZones(zoneFixture())
		require.NotEmpty(t, zones)

		seenDEZ := false
		for _, z := range zones {
			if z.ZoneType == domain.ZoneDEZ {
				seenDEZ = true
			}
			if z.ZoneType == domain.ZoneBlue {
				assert.False(t, seenDEZ, "blue zone after a dez entry")
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, analytics.ClassifyZones(nil))
	})

	t.Run("thresholds are inclusive", func(t *testing.T) {
		// Identical ratios: every district sits exactly on both thresholds.
		aggs := make([]domain.DistrictAggregate, 4)
		for i := range aggs {
			aggs[i] = domain.DistrictAggregate{
				State:           "Goa",
				District:        fmt.Sprintf("D%d", i),
				TotalPopulation: 100,
				DemoAge17:       50,
				BioRecords:      5,
			}
		}

		zones := analytics.ClassifyZones(aggs)

		// All qualify as blue (inclusive >=), none duplicate as dez.
		assert.Len(t, zones, 4)
		for _, z := range zones {
			assert.Equal(t, domain.ZoneBlue, z.ZoneType)
		}
	})
}

func TestTopBlueZones(t *testing.T) {
	aggs := []domain.DistrictAggregate{
		{State: "Bihar", District: "A", SeniorCount: 100, TotalPopulation: 1000},
		{State: "Bihar", District: "B", SeniorCount: 500, TotalPopulation: 2000},
		{State: "Bihar", District: "C", SeniorCount: 300, TotalPopulation: 0},
	}

	zones := analytics.TopBlueZones(aggs, 2)

	require.Len(t, zones, 2)
	assert.Equal(t, "B", zones[0].District)
	assert.Equal(t, 25.0, zones[0].SeniorDensity)
	assert.Equal(t, "C", zones[1].District)
	// Zero population never divides
	assert.Equal(t, 0.0, zones[1].SeniorDensity)
}
