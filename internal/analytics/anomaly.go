package analytics

import (
	"math"
	"sort"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// Anomaly detection thresholds. A single critical cutoff is used everywhere.
const (
	// AnomalyEmitThreshold is the minimum absolute deviation, in percent,
	// for a district to be reported at all.
	AnomalyEmitThreshold = 40.0

	// AnomalyCriticalThreshold upgrades severity from warning to critical.
	AnomalyCriticalThreshold = 60.0

	// DefaultAnomalyLimit truncates the result when the caller passes no limit.
	DefaultAnomalyLimit = 10

	// ExpectedUpdateRate is the baseline update volume as a share of
	// population.
	ExpectedUpdateRate = 0.05
)

// ExpectedRateFn supplies the expected activity baseline for a district.
type ExpectedRateFn func(domain.DistrictAggregate) float64

// ExpectedUpdateBaseline is the default baseline: 5% of the district
// population is expected to update in the window.
func ExpectedUpdateBaseline(agg domain.DistrictAggregate) float64 {
	return agg.TotalPopulation * ExpectedUpdateRate
}

// DetectAnomalies flags districts whose actual update volume deviates from
// the expected baseline by more than the emit threshold, sorted by absolute
// deviation descending and truncated to limit (default 10). The expected
// denominator is floored at 1, so a zero baseline never divides by zero.
func DetectAnomalies(aggs []domain.DistrictAggregate, expected ExpectedRateFn, limit int) []domain.AnomalyRecord {
	if expected == nil {
		expected = ExpectedUpdateBaseline
	}
	if limit <= 0 {
		limit = DefaultAnomalyLimit
	}

	anomalies := make([]domain.AnomalyRecord, 0)
	for _, agg := range aggs {
		exp := expected(agg)
		deviation := (agg.TotalUpdates - exp) / math.Max(exp, 1) * 100

		if math.Abs(deviation) <= AnomalyEmitThreshold {
			continue
		}

		record := domain.AnomalyRecord{
			State:        agg.State,
			District:     agg.District,
			DeviationPct: Round1(deviation),
			Severity:     domain.SeverityWarning,
			Type:         domain.AnomalySurge,
		}
		if math.Abs(deviation) > AnomalyCriticalThreshold {
			record.Severity = domain.SeverityCritical
		}
		if deviation < 0 {
			record.Type = domain.AnomalyDrop
		}

		anomalies = append(anomalies, record)
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return math.Abs(anomalies[i].DeviationPct) > math.Abs(anomalies[j].DeviationPct)
	})

	if len(anomalies) > limit {
		anomalies = anomalies[:limit]
	}
	return anomalies
}
