package dto

import "github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"

// DsiCalculateResponse is the on-demand score for one district plus the
// inputs that produced it.
type DsiCalculateResponse struct {
	District        string  `json:"district"`
	State           string  `json:"state"`
	DSI             float64 `json:"dsi"`
	Status          string  `json:"status"`
	Volume          int64   `json:"volume"`
	Capacity        int64   `json:"capacity"`
	AdultPercent    float64 `json:"adult_percent"`
	TotalPopulation int64   `json:"total_population"`
}

// DsiFormulaResponse documents the scoring formula and its constants.
type DsiFormulaResponse struct {
	Formula    string             `json:"formula"`
	Constants  map[string]float64 `json:"constants"`
	Thresholds map[string]float64 `json:"thresholds"`
	Statuses   []string           `json:"statuses"`
}

// Alert is one dashboard alert synthesized from a detected anomaly.
type Alert struct {
	ID       string  `json:"id"`
	Severity string  `json:"severity"`
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	District string  `json:"district"`
	State    string  `json:"state"`
	Metric   float64 `json:"metric"`
}

// DemographicsResponse groups the age-structure views.
type DemographicsResponse struct {
	ChildGaps []domain.ChildGap   `json:"child_gaps"`
	BlueZones []domain.BlueZone   `json:"blue_zones"`
	Zones     []domain.ZoneRecord `json:"zones"`
}

// MigrationFlowsResponse is the corridor table with its rollup summary.
type MigrationFlowsResponse struct {
	Corridors []domain.Corridor `json:"corridors"`
	Summary   MigrationSummary  `json:"summary"`
}

// MigrationSummary rolls the corridor table up for the header widgets.
type MigrationSummary struct {
	ActiveFlow     int64  `json:"active_flow"`
	SurgeCorridors int    `json:"surge_corridors"`
	TopOrigin      string `json:"top_origin"`
	TopDestination string `json:"top_destination"`
}

// ForecastResponse is the 7-day projection with its rollup summary.
type ForecastResponse struct {
	Points  []domain.ForecastPoint `json:"points"`
	Summary ForecastSummary        `json:"summary"`
}

// ForecastSummary rolls the projection up for the header widgets.
type ForecastSummary struct {
	PeakDay        string  `json:"peak_day"`
	PeakDemand     int64   `json:"peak_demand"`
	TotalPredicted int64   `json:"total_predicted"`
	AvgConfidence  float64 `json:"avg_confidence"`
}
