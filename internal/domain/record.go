package domain

// Dataset names used by the loader and logs.
const (
	DatasetDemographic = "demographic"
	DatasetBiometric   = "biometric"
	DatasetEnrolment   = "enrolment"
)

// Age-bucket column names per dataset.
const (
	ColDemoAge5_17  = "demo_age_5_17"
	ColDemoAge17    = "demo_age_17_"
	ColBioAge5_17   = "bio_age_5_17"
	ColBioAge17     = "bio_age_17_"
	ColEnrolAge0_5  = "age_0_5"
	ColEnrolAge5_17 = "age_5_17"
	ColEnrolAge18   = "age_18_greater"
)

// Record is one immutable row of a master dataset: a geographic key, an
// optional date and the age-bucketed counts. Counts hold every numeric
// column of the source row; malformed values arrive coerced to 0.
type Record struct {
	State    string
	District string
	Pincode  string
	Date     string
	Counts   map[string]float64
}

// Count returns the named numeric field, 0 when absent.
func (r Record) Count(field string) float64 {
	return r.Counts[field]
}

// Table is one loaded dataset. Tables are loaded once and never mutated,
// so they are safe to share across concurrent readers.
type Table struct {
	Name string
	Rows []Record
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Tables bundles the three datasets the pipeline runs over. Any of them may
// be empty when its source file was missing or unreadable.
type Tables struct {
	Demographic *Table
	Biometric   *Table
	Enrolment   *Table
}

// EmptyTables returns a Tables value with all three datasets empty.
func EmptyTables() *Tables {
	return &Tables{
		Demographic: &Table{Name: DatasetDemographic},
		Biometric:   &Table{Name: DatasetBiometric},
		Enrolment:   &Table{Name: DatasetEnrolment},
	}
}
