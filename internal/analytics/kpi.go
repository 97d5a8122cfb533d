package analytics

import (
	"time"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// AssetEfficiencyPlaceholder stands in until utilization telemetry exists.
const AssetEfficiencyPlaceholder = 78.4

// BuildKPIs summarizes a scored run for the dashboard header. aggs and
// results must describe the same districts in the same order.
func BuildKPIs(aggs []domain.DistrictAggregate, results []domain.DsiResult, now time.Time) domain.KPIs {
	kpis := domain.KPIs{
		TotalDistricts:  len(aggs),
		AssetEfficiency: AssetEfficiencyPlaceholder,
		SystemStatus:    "OPTIMAL",
		GeneratedAt:     now.Format(time.RFC3339),
	}

	var dsiSum float64
	for _, r := range results {
		dsiSum += r.DSI
		if r.DSI >= StatusCriticalMin {
			kpis.CriticalDistricts++
		}
		if r.DSI >= StatusMediumMin {
			kpis.StressedDistricts++
		}
	}
	kpis.HighDistricts = kpis.StressedDistricts - kpis.CriticalDistricts
	if len(results) > 0 {
		kpis.DsiAverage = Round2(dsiSum / float64(len(results)))
	}

	for _, agg := range aggs {
		kpis.TotalPopulation += int64(agg.TotalPopulation)
		kpis.TotalEnrolments += int64(agg.TotalEnrolments)
		kpis.TotalUpdates += int64(agg.TotalUpdates)
		kpis.SeniorPopulation += int64(agg.SeniorCount)
	}

	return kpis
}
