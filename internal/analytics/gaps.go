package analytics

import (
	"math"
	"sort"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

const (
	// ChildTransitionShare is the share of 5-17 children expected to have
	// completed their biometric transition.
	ChildTransitionShare = 0.5

	// DefaultChildGapLimit caps the reported gap list.
	DefaultChildGapLimit = 20

	// DeadCenterDecile marks the update-rate decile below which a district
	// counts as dead.
	DeadCenterDecile = 0.10

	// DefaultDeadCenterLimit caps the reported dead-center list.
	DefaultDeadCenterLimit = 20
)

// ChildGaps compares 0-5 enrolments against the expected biometric
// transition of the 5-17 cohort, reporting the districts with the largest
// uncovered share. Gaps never go negative; the percent denominator is
// floored at 1.
func ChildGaps(aggs []domain.DistrictAggregate, limit int) []domain.ChildGap {
	if limit <= 0 {
		limit = DefaultChildGapLimit
	}

	gaps := make([]domain.ChildGap, 0, len(aggs))
	for _, agg := range aggs {
		if agg.EnrolRecords == 0 {
			continue
		}

		enrolled := agg.EnrolAge0_5
		expected := agg.DemoAge5_17 * ChildTransitionShare
		gap := math.Max(enrolled-expected, 0)
		gapPercent := Round1(gap / math.Max(enrolled, 1) * 100)

		gaps = append(gaps, domain.ChildGap{
			State:      agg.State,
			District:   agg.District,
			Enrolled:   int64(enrolled),
			GapPercent: gapPercent,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].GapPercent > gaps[j].GapPercent
	})

	if len(gaps) > limit {
		gaps = gaps[:limit]
	}
	return gaps
}

// DeadCenters reports districts whose biometric update rate falls in the
// lowest observed decile, lowest rate first.
func DeadCenters(aggs []domain.DistrictAggregate, limit int) []domain.DeadCenter {
	if limit <= 0 {
		limit = DefaultDeadCenterLimit
	}

	rates := make([]float64, 0, len(aggs))
	for _, agg := range aggs {
		rates = append(rates, updateRate(agg))
	}
	if len(rates) == 0 {
		return nil
	}

	threshold := Quantile(rates, DeadCenterDecile)

	dead := make([]domain.DeadCenter, 0)
	for _, agg := range aggs {
		rate := updateRate(agg)
		if rate > threshold {
			continue
		}
		dead = append(dead, domain.DeadCenter{
			State:        agg.State,
			District:     agg.District,
			TotalUpdates: int64(agg.TotalUpdates),
			UpdateRate:   rate,
		})
	}

	sort.SliceStable(dead, func(i, j int) bool {
		return dead[i].UpdateRate < dead[j].UpdateRate
	})

	if len(dead) > limit {
		dead = dead[:limit]
	}
	return dead
}

func updateRate(agg domain.DistrictAggregate) float64 {
	return Round2(agg.TotalUpdates / math.Max(agg.TotalPopulation, 1) * 100)
}
