package domain

// ZoneType tags a district classified by the zone classifier.
type ZoneType string

const (
	ZoneBlue ZoneType = "blue_zone"
	ZoneDEZ  ZoneType = "dez"
)

// ZoneRecord is a district flagged as a blue zone (high senior share) or a
// digital exclusion zone (low activity per capita). A district appears at
// most once; blue-zone classification wins when both predicates hold.
type ZoneRecord struct {
	State             string   `json:"state"`
	District          string   `json:"district"`
	ZoneType          ZoneType `json:"zone_type"`
	ZoneReason        string   `json:"zone_reason"`
	AdultRatio        float64  `json:"adult_ratio"`
	ActivityPerCapita float64  `json:"activity_per_capita"`
	TotalPopulation   int64    `json:"total_population"`
}

// BlueZone is the dashboard payload for senior-dense districts.
type BlueZone struct {
	State           string  `json:"state"`
	District        string  `json:"district"`
	SeniorCount     int64   `json:"senior_count"`
	TotalPopulation int64   `json:"total_population"`
	SeniorDensity   float64 `json:"senior_density"`
}
