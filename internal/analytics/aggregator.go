package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// Group key field names the aggregator understands.
const (
	KeyState    = "state"
	KeyDistrict = "district"
	KeyPincode  = "pincode"
	KeyDate     = "date"
)

// groupKeySep joins normalized key values into a map key. Unit separator,
// never appears in source data.
const groupKeySep = "\x1f"

// GroupedRow is one output row of Aggregate: the (normalized) key values it
// was grouped under, the requested field sums and the raw row count.
type GroupedRow struct {
	Keys  map[string]string
	Sums  map[string]float64
	Count int
}

// NormalizeKey trims and case-folds a grouping value so that rows differing
// only by casing or stray whitespace land in the same group. This is a
// deliberate departure from raw string equality, which silently fragments
// groups on dirty data.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Aggregate groups rows by the ordered groupBy fields and sums the requested
// numeric fields per group. Missing or NaN values count as 0. Only key
// tuples observed in the input appear in the result.
//
// The same input always produces the same output; no hidden randomness.
func Aggregate(rows []domain.Record, groupBy []string, sumFields []string) map[string]*GroupedRow {
	out := make(map[string]*GroupedRow)

	for _, row := range rows {
		values := make([]string, len(groupBy))
		for i, field := range groupBy {
			values[i] = NormalizeKey(keyValue(row, field))
		}
		key := strings.Join(values, groupKeySep)

		grp, ok := out[key]
		if !ok {
			grp = &GroupedRow{
				Keys: make(map[string]string, len(groupBy)),
				Sums: make(map[string]float64, len(sumFields)),
			}
			for i, field := range groupBy {
				grp.Keys[field] = values[i]
			}
			out[key] = grp
		}

		grp.Count++
		for _, field := range sumFields {
			v := row.Count(field)
			if math.IsNaN(v) {
				v = 0
			}
			grp.Sums[field] += v
		}
	}

	return out
}

func keyValue(r domain.Record, field string) string {
	switch field {
	case KeyState:
		return r.State
	case KeyDistrict:
		return r.District
	case KeyPincode:
		return r.Pincode
	case KeyDate:
		return r.Date
	default:
		return ""
	}
}

// BuildDistrictAggregates merges the three datasets into per-district
// aggregates, sorted by (state, district) for reproducible downstream order.
// District display names keep the casing of the first demographic row seen.
func BuildDistrictAggregates(t *domain.Tables) []domain.DistrictAggregate {
	if t == nil {
		return nil
	}

	demo := Aggregate(demoRows(t), []string{KeyState, KeyDistrict},
		[]string{domain.ColDemoAge5_17, domain.ColDemoAge17})
	bio := Aggregate(bioRows(t), []string{KeyState, KeyDistrict},
		[]string{domain.ColBioAge5_17, domain.ColBioAge17})
	enrol := Aggregate(enrolRows(t), []string{KeyState, KeyDistrict},
		[]string{domain.ColEnrolAge0_5, domain.ColEnrolAge5_17, domain.ColEnrolAge18})

	names := displayNames(t)

	aggs := make([]domain.DistrictAggregate, 0, len(demo))
	for key, d := range demo {
		agg := domain.DistrictAggregate{
			State:       displayName(names, d.Keys[KeyState]),
			District:    displayName(names, d.Keys[KeyDistrict]),
			DemoAge5_17: d.Sums[domain.ColDemoAge5_17],
			DemoAge17:   d.Sums[domain.ColDemoAge17],
		}

		if b, ok := bio[key]; ok {
			agg.BioAge5_17 = b.Sums[domain.ColBioAge5_17]
			agg.BioAge17 = b.Sums[domain.ColBioAge17]
			agg.BioRecords = b.Count
		}
		if e, ok := enrol[key]; ok {
			agg.EnrolAge0_5 = e.Sums[domain.ColEnrolAge0_5]
			agg.EnrolAge5_17 = e.Sums[domain.ColEnrolAge5_17]
			agg.EnrolAge18 = e.Sums[domain.ColEnrolAge18]
			agg.EnrolRecords = e.Count
		}

		agg.TotalPopulation = agg.DemoAge5_17 + agg.DemoAge17
		agg.TotalUpdates = agg.BioAge5_17 + agg.BioAge17
		agg.TotalEnrolments = agg.EnrolAge0_5 + agg.EnrolAge5_17 + agg.EnrolAge18
		agg.Capacity = Capacity(agg.TotalPopulation)
		agg.SeniorCount = math.Floor(agg.DemoAge17 * SeniorShare)
		if agg.TotalPopulation > 0 {
			agg.AdultPercent = Round1(agg.DemoAge17 / agg.TotalPopulation * 100)
		}

		aggs = append(aggs, agg)
	}

	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].State != aggs[j].State {
			return aggs[i].State < aggs[j].State
		}
		return aggs[i].District < aggs[j].District
	})

	return aggs
}

// BuildStateActivity rolls the datasets up by state for the migration
// estimator and forecast engine.
func BuildStateActivity(t *domain.Tables) map[string]domain.StateActivity {
	if t == nil {
		return map[string]domain.StateActivity{}
	}

	demo := Aggregate(demoRows(t), []string{KeyState},
		[]string{domain.ColDemoAge5_17, domain.ColDemoAge17})
	bio := Aggregate(bioRows(t), []string{KeyState},
		[]string{domain.ColBioAge5_17, domain.ColBioAge17})
	enrol := Aggregate(enrolRows(t), []string{KeyState}, nil)

	names := displayNames(t)

	out := make(map[string]domain.StateActivity, len(demo))
	for key, d := range demo {
		sa := domain.StateActivity{
			State:           displayName(names, d.Keys[KeyState]),
			TotalPopulation: d.Sums[domain.ColDemoAge5_17] + d.Sums[domain.ColDemoAge17],
		}
		if b, ok := bio[key]; ok {
			sa.TotalUpdates = b.Sums[domain.ColBioAge5_17] + b.Sums[domain.ColBioAge17]
			sa.BioRecords = b.Count
		}
		if e, ok := enrol[key]; ok {
			sa.EnrolRecords = e.Count
		}
		// Activity per 1000 population
		sa.DailyDemandRate = float64(sa.BioRecords+sa.EnrolRecords) /
			math.Max(sa.TotalPopulation, 1) * 1000
		out[key] = sa
	}

	// States with activity but no demographic rows still count. With zero
	// population the rate formula degenerates to (bio+enrol)*1000, same as
	// the main branch.
	for key, b := range bio {
		if _, ok := out[key]; ok {
			continue
		}
		sa := domain.StateActivity{
			State:        displayName(names, b.Keys[KeyState]),
			TotalUpdates: b.Sums[domain.ColBioAge5_17] + b.Sums[domain.ColBioAge17],
			BioRecords:   b.Count,
		}
		if e, ok := enrol[key]; ok {
			sa.EnrolRecords = e.Count
		}
		sa.DailyDemandRate = float64(sa.BioRecords+sa.EnrolRecords) * 1000
		out[key] = sa
	}
	for key, e := range enrol {
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = domain.StateActivity{
			State:           displayName(names, e.Keys[KeyState]),
			EnrolRecords:    e.Count,
			DailyDemandRate: float64(e.Count) * 1000,
		}
	}

	return out
}

func demoRows(t *domain.Tables) []domain.Record {
	if t.Demographic == nil {
		return nil
	}
	return t.Demographic.Rows
}

func bioRows(t *domain.Tables) []domain.Record {
	if t.Biometric == nil {
		return nil
	}
	return t.Biometric.Rows
}

func enrolRows(t *domain.Tables) []domain.Record {
	if t.Enrolment == nil {
		return nil
	}
	return t.Enrolment.Rows
}

// displayNames maps normalized key -> first-seen original casing.
func displayNames(t *domain.Tables) map[string]string {
	names := make(map[string]string)
	for _, row := range demoRows(t) {
		remember(names, row.State)
		remember(names, row.District)
	}
	for _, row := range bioRows(t) {
		remember(names, row.State)
		remember(names, row.District)
	}
	for _, row := range enrolRows(t) {
		remember(names, row.State)
		remember(names, row.District)
	}
	return names
}

func remember(names map[string]string, raw string) {
	key := NormalizeKey(raw)
	if key == "" {
		return
	}
	if _, ok := names[key]; !ok {
		names[key] = strings.TrimSpace(raw)
	}
}

func displayName(names map[string]string, key string) string {
	if name, ok := names[key]; ok {
		return name
	}
	return key
}
