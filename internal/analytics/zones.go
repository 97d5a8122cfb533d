package analytics

import (
	"math"
	"sort"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// Zone classification thresholds, recomputed over the full aggregate
// population on every run.
const (
	BlueZoneQuantile = 0.80
	DEZQuantile      = 0.20
)

const (
	blueZoneReason = "High senior population (60+ age group)"
	dezReason      = "Low digital enrollment activity"
)

// ClassifyZones tags districts as blue zones (adult ratio at or above the
// 80th percentile) or digital exclusion zones (activity per capita at or
// below the 20th percentile). A district matching both predicates is
// reported once, as a blue zone: blue-zone classification runs first and
// wins the de-dup.
func ClassifyZones(aggs []domain.DistrictAggregate) []domain.ZoneRecord {
	if len(aggs) == 0 {
		return nil
	}

	adultRatios := make([]float64, len(aggs))
	activities := make([]float64, len(aggs))
	for i, agg := range aggs {
		adultRatios[i] = adultRatio(agg)
		activities[i] = activityPerCapita(agg)
	}

	seniorThreshold := Quantile(adultRatios, BlueZoneQuantile)
	activityThreshold := Quantile(activities, DEZQuantile)

	zones := make([]domain.ZoneRecord, 0)
	seen := make(map[string]bool, len(aggs))

	for i, agg := range aggs {
		if adultRatios[i] >= seniorThreshold {
			zones = append(zones, zoneRecord(agg, domain.ZoneBlue, blueZoneReason, adultRatios[i], activities[i]))
			seen[zoneKey(agg)] = true
		}
	}
	for i, agg := range aggs {
		if activities[i] <= activityThreshold && !seen[zoneKey(agg)] {
			zones = append(zones, zoneRecord(agg, domain.ZoneDEZ, dezReason, adultRatios[i], activities[i]))
		}
	}

	return zones
}

// TopBlueZones returns the most senior-dense districts for the dashboard,
// ordered by senior count descending.
func TopBlueZones(aggs []domain.DistrictAggregate, limit int) []domain.BlueZone {
	sorted := make([]domain.DistrictAggregate, len(aggs))
	copy(sorted, aggs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SeniorCount > sorted[j].SeniorCount
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	zones := make([]domain.BlueZone, 0, len(sorted))
	for _, agg := range sorted {
		density := 0.0
		if agg.TotalPopulation > 0 {
			density = Round1(agg.SeniorCount / agg.TotalPopulation * 100)
		}
		zones = append(zones, domain.BlueZone{
			State:           agg.State,
			District:        agg.District,
			SeniorCount:     int64(agg.SeniorCount),
			TotalPopulation: int64(agg.TotalPopulation),
			SeniorDensity:   density,
		})
	}
	return zones
}

func adultRatio(agg domain.DistrictAggregate) float64 {
	return agg.DemoAge17 / math.Max(agg.TotalPopulation, 1)
}

func activityPerCapita(agg domain.DistrictAggregate) float64 {
	return float64(agg.BioRecords+agg.EnrolRecords) / math.Max(agg.TotalPopulation, 1)
}

func zoneKey(agg domain.DistrictAggregate) string {
	return NormalizeKey(agg.State) + groupKeySep + NormalizeKey(agg.District)
}

func zoneRecord(agg domain.DistrictAggregate, zt domain.ZoneType, reason string, ratio, activity float64) domain.ZoneRecord {
	return domain.ZoneRecord{
		State:             agg.State,
		District:          agg.District,
		ZoneType:          zt,
		ZoneReason:        reason,
		AdultRatio:        ratio,
		ActivityPerCapita: activity,
		TotalPopulation:   int64(agg.TotalPopulation),
	}
}
