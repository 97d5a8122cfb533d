package analytics

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// Forecast constants. This is a fixed heuristic formula with hand-tuned
// multipliers, not a fitted model.
const (
	// ForecastDays is the projection horizon.
	ForecastDays = 7

	// DailyTrendGrowth compounds 0.5% per day from day 0.
	DailyTrendGrowth = 0.005

	// EstimateSpread brackets the prediction at +/-15%.
	EstimateSpread = 0.15

	// BaselineWindowDays converts total activity volume into a daily baseline.
	BaselineWindowDays = 30

	// CapacityPerCenter is the assumed daily transaction capacity of one center.
	CapacityPerCenter = 200
)

// dowFactors reflect observed weekday traffic: Monday catch-up peaks,
// weekends drop off.
var dowFactors = map[time.Weekday]float64{
	time.Monday:    1.15,
	time.Tuesday:   1.10,
	time.Wednesday: 1.05,
	time.Thursday:  1.00,
	time.Friday:    0.95,
	time.Saturday:  0.70,
	time.Sunday:    0.50,
}

// SeasonalFactor follows the Indian service calendar: tax season peaks,
// festival/year-end elevation, monsoon slowdown.
func SeasonalFactor(m time.Month) float64 {
	switch m {
	case time.January, time.March, time.April:
		return 1.25
	case time.October, time.November, time.December:
		return 1.15
	case time.June, time.July, time.August:
		return 0.85
	default:
		return 1.0
	}
}

// DayOfWeekFactor returns the weekday demand multiplier.
func DayOfWeekFactor(d time.Weekday) float64 {
	return dowFactors[d]
}

// TrendFactor compounds daily growth from the forecast start.
func TrendFactor(dayOffset int) float64 {
	return 1 + float64(dayOffset)*DailyTrendGrowth
}

// ForecastConfidence decays 4 points per day from 0.95, floored at 0.65.
func ForecastConfidence(dayOffset int) float64 {
	return math.Max(0.65, 0.95-float64(dayOffset)*0.04)
}

// VarianceFactor is a bounded pseudo-random perturbation in [0.95, 1.05),
// seeded from (dayOffset, start day-of-month) so a given start date always
// reproduces the same forecast.
func VarianceFactor(dayOffset int, start time.Time) float64 {
	rng := rand.New(rand.NewSource(int64(dayOffset + start.Day())))
	return 0.95 + rng.Float64()*0.10
}

// Forecast7Day projects daily demand for start..start+6 from a historical
// daily baseline. Estimates are truncated to integers; low and high bracket
// the prediction at +/-15%.
func Forecast7Day(baseline float64, start time.Time) []domain.ForecastPoint {
	points := make([]domain.ForecastPoint, 0, ForecastDays)

	seasonal := SeasonalFactor(start.Month())

	for day := 0; day < ForecastDays; day++ {
		date := start.AddDate(0, 0, day)

		predicted := baseline * DayOfWeekFactor(date.Weekday()) * seasonal
		predicted *= TrendFactor(day)
		predicted *= VarianceFactor(day, start)

		points = append(points, domain.ForecastPoint{
			Date:         date.Format("2006-01-02"),
			DayName:      date.Weekday().String(),
			Predicted:    int64(predicted),
			LowEstimate:  int64(predicted * (1 - EstimateSpread)),
			HighEstimate: int64(predicted * (1 + EstimateSpread)),
			Confidence:   Round2(ForecastConfidence(day)),
		})
	}

	return points
}

// DemandBaseline derives the historical daily transaction baseline from the
// activity datasets: total recorded activity spread over the window.
func DemandBaseline(t *domain.Tables) float64 {
	if t == nil {
		return 0
	}
	return float64(t.Biometric.Len()+t.Enrolment.Len()) / BaselineWindowDays
}

// RecommendResources flags the top-demand states whose predicted load
// exceeds their estimated center capacity.
func RecommendResources(states map[string]domain.StateActivity, limit int) []domain.ResourceRecommendation {
	if limit <= 0 {
		limit = 5
	}

	ranked := make([]domain.StateActivity, 0, len(states))
	for _, sa := range states {
		ranked = append(ranked, sa)
	}
	sortStatesByDemand(ranked)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	recs := make([]domain.ResourceRecommendation, 0, len(ranked))
	for _, sa := range ranked {
		stateDemand := int64(sa.DailyDemandRate * sa.TotalPopulation / 1000)
		neededCenters := int64(math.Max(1, float64(stateDemand)/CapacityPerCenter))
		currentCenters := int64(math.Max(1, float64(sa.BioRecords)/100))

		if neededCenters <= currentCenters {
			continue
		}

		priority := "medium"
		if float64(neededCenters) > float64(currentCenters)*1.5 {
			priority = "high"
		}

		recs = append(recs, domain.ResourceRecommendation{
			State:                   sa.State,
			CurrentCapacity:         currentCenters * CapacityPerCenter,
			PredictedDemand:         stateDemand,
			AdditionalCentersNeeded: neededCenters - currentCenters,
			Priority:                priority,
		})
	}

	return recs
}

// Map iteration order is random; the name tiebreak keeps output stable.
func sortStatesByDemand(states []domain.StateActivity) {
	sort.Slice(states, func(i, j int) bool {
		if states[i].DailyDemandRate != states[j].DailyDemandRate {
			return states[i].DailyDemandRate > states[j].DailyDemandRate
		}
		return states[i].State < states[j].State
	})
}
