package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// KPIs is the aggregate summary shown on the dashboard header.
type KPIs struct {
	DsiAverage        float64 `json:"dsi_average"`
	StressedDistricts int     `json:"stressed_districts"`
	CriticalDistricts int     `json:"critical_districts"`
	HighDistricts     int     `json:"high_districts"`
	TotalPopulation   int64   `json:"total_population"`
	TotalDistricts    int     `json:"total_districts"`
	TotalEnrolments   int64   `json:"total_enrolments"`
	TotalUpdates      int64   `json:"total_updates"`
	SeniorPopulation  int64   `json:"senior_population"`
	AssetEfficiency   float64 `json:"asset_efficiency"`
	SystemStatus      string  `json:"system_status"`
	GeneratedAt       string  `json:"generated_at"`
}

// MapMarker carries one district's DSI onto the map with a synthetic but
// stable coordinate inside its state's bounding box.
type MapMarker struct {
	District     string    `json:"district"`
	State        string    `json:"state"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	DSI          float64   `json:"dsi"`
	Status       DsiStatus `json:"status"`
	Population   int64     `json:"population"`
	Capacity     int64     `json:"capacity"`
	SeniorCount  int64     `json:"senior_count"`
	AdultPercent float64   `json:"adult_percent"`
}

// ChildGap measures enrolled 0-5 children missing their expected transition
// to biometric updates.
type ChildGap struct {
	State      string  `json:"state"`
	District   string  `json:"district"`
	Enrolled   int64   `json:"enrolled"`
	GapPercent float64 `json:"gap_percent"`
}

// DeadCenter is a district whose update rate sits in the lowest decile.
type DeadCenter struct {
	State        string  `json:"state"`
	District     string  `json:"district"`
	TotalUpdates int64   `json:"total_updates"`
	UpdateRate   float64 `json:"update_rate"`
}

// DashboardSnapshot is the single result document the presentation layer
// binds to. Field names are a stable contract; renaming any key breaks
// external consumers.
type DashboardSnapshot struct {
	KPIs               KPIs            `json:"kpis"`
	StressedDistricts  []DsiResult     `json:"stressed_districts"`
	MapMarkers         []MapMarker     `json:"map_markers"`
	MigrationCorridors []Corridor      `json:"migration_corridors"`
	ChildGaps          []ChildGap      `json:"child_gaps"`
	BlueZones          []BlueZone      `json:"blue_zones"`
	DeadCenters        []DeadCenter    `json:"dead_centers"`
	Anomalies          []AnomalyRecord `json:"anomalies"`
	DemandForecast     []ForecastPoint `json:"demand_forecast"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// PipelineRun is one persisted snapshot build, kept for run history.
type PipelineRun struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	GeneratedAt       time.Time       `json:"generated_at" db:"generated_at"`
	DsiAverage        float64         `json:"dsi_average" db:"dsi_average"`
	StressedDistricts int             `json:"stressed_districts" db:"stressed_districts"`
	CriticalDistricts int             `json:"critical_districts" db:"critical_districts"`
	TotalDistricts    int             `json:"total_districts" db:"total_districts"`
	Snapshot          json.RawMessage `json:"snapshot,omitempty" db:"snapshot"`
}
