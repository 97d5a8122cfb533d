package analytics

import (
	"math"
	"sort"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// DSI formula constants.
//
// DSI = (V*Wa + S*Ws) / C + R, scaled into [0,10].
//
// ScaleDivisor and PopulationPerCenter are single canonical values; the
// formula is only meaningful with one fixed normalization.
const (
	// ScaleDivisor maps raw scores into the 0-10 band.
	ScaleDivisor = 1000.0

	// PopulationPerCenter estimates one service center per 5000 people.
	PopulationPerCenter = 5000.0

	// UrgencyMultiplier weighs the seasonal spike component (Ws).
	UrgencyMultiplier = 1.5

	// DefaultSeasonalFactor approximates the seasonal spike as 10% of volume.
	DefaultSeasonalFactor = 0.1

	// DefaultRepeatRate approximates repeat pressure as 5% of volume.
	DefaultRepeatRate = 0.05

	// SeniorShare estimates the 60+ share of the adult population.
	SeniorShare = 0.15
)

// Status cut points. Fixed constants, not runtime configuration.
const (
	StatusMediumMin   = 3.3
	StatusCriticalMin = 6.6
)

// ComputeDSI calculates the District Stress Index with default seasonal and
// repeat factors. The result is always within [0, 10].
func ComputeDSI(volume, adultPercent, capacity float64) float64 {
	return ComputeDSIWith(volume, adultPercent, capacity, DefaultSeasonalFactor, DefaultRepeatRate)
}

// ComputeDSIWith is ComputeDSI with explicit seasonal factor and repeat rate.
func ComputeDSIWith(volume, adultPercent, capacity, seasonalFactor, repeatRate float64) float64 {
	wa := adultPercent / 100.0
	s := volume * seasonalFactor
	r := volume * repeatRate

	if capacity < 1 {
		capacity = 1
	}

	raw := (volume*wa + s*UrgencyMultiplier) / capacity + r

	dsi := raw / ScaleDivisor
	if dsi < 0 {
		return 0
	}
	if dsi > 10 {
		return 10
	}
	return dsi
}

// Status classifies a DSI value against the fixed cut points.
func Status(dsi float64) domain.DsiStatus {
	switch {
	case dsi >= StatusCriticalMin:
		return domain.StatusCritical
	case dsi >= StatusMediumMin:
		return domain.StatusMedium
	default:
		return domain.StatusLow
	}
}

// Capacity estimates service capacity from population, floored at 1 so
// the DSI denominator never hits zero.
func Capacity(totalPopulation float64) float64 {
	return math.Max(math.Floor(totalPopulation/PopulationPerCenter), 1)
}

// ScoreDistrict derives the DsiResult for one aggregate. A district with no
// recorded population scores 0/low; no division by zero anywhere.
func ScoreDistrict(agg domain.DistrictAggregate) domain.DsiResult {
	result := domain.DsiResult{
		District:        agg.District,
		State:           agg.State,
		Status:          domain.StatusLow,
		Capacity:        int64(agg.Capacity),
		TotalPopulation: int64(agg.TotalPopulation),
	}

	if agg.TotalPopulation <= 0 {
		result.Capacity = 1
		return result
	}

	volume := agg.DemoAge17
	dsi := ComputeDSI(volume, agg.AdultPercent, agg.Capacity)

	result.DSI = Round2(dsi)
	result.Status = Status(result.DSI)
	result.Volume = int64(volume)
	result.AdultPercent = agg.AdultPercent
	return result
}

// ScoreDistricts scores every aggregate, preserving input order.
func ScoreDistricts(aggs []domain.DistrictAggregate) []domain.DsiResult {
	results := make([]domain.DsiResult, len(aggs))
	for i, agg := range aggs {
		results[i] = ScoreDistrict(agg)
	}
	return results
}

// RankStressed returns the top districts by DSI, highest first. Ties keep
// the stable (state, district) input order.
func RankStressed(results []domain.DsiResult, limit int) []domain.DsiResult {
	ranked := make([]domain.DsiResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DSI > ranked[j].DSI
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
