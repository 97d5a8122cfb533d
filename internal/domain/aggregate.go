package domain

// DistrictAggregate holds the per-(state, district) sums the derived views
// work from. Built fresh on every pipeline run.
//
// Invariants: TotalPopulation is the sum of the demographic age buckets;
// Capacity is never below 1.
type DistrictAggregate struct {
	State    string `json:"state"`
	District string `json:"district"`

	DemoAge5_17 float64 `json:"demo_age_5_17"`
	DemoAge17   float64 `json:"demo_age_17_"`

	BioAge5_17 float64 `json:"bio_age_5_17"`
	BioAge17   float64 `json:"bio_age_17_"`

	EnrolAge0_5  float64 `json:"age_0_5"`
	EnrolAge5_17 float64 `json:"age_5_17"`
	EnrolAge18   float64 `json:"age_18_greater"`

	// Raw row counts per activity dataset, used for per-capita activity.
	BioRecords   int `json:"bio_records"`
	EnrolRecords int `json:"enrol_records"`

	TotalPopulation float64 `json:"total_population"`
	AdultPercent    float64 `json:"adult_percent"`
	Capacity        float64 `json:"capacity"`
	TotalUpdates    float64 `json:"total_updates"`
	TotalEnrolments float64 `json:"total_enrolments"`
	SeniorCount     float64 `json:"senior_count"`
}

// StateActivity is the per-state rollup feeding the migration estimator and
// the forecast engine.
type StateActivity struct {
	State           string  `json:"state"`
	TotalPopulation float64 `json:"total_population"`
	TotalUpdates    float64 `json:"total_updates"`
	BioRecords      int     `json:"bio_records"`
	EnrolRecords    int     `json:"enrol_records"`
	DailyDemandRate float64 `json:"daily_demand_rate"`
}
