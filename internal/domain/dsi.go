package domain

// DsiStatus classifies a District Stress Index value.
type DsiStatus string

const (
	StatusLow      DsiStatus = "low"
	StatusMedium   DsiStatus = "medium"
	StatusCritical DsiStatus = "critical"
)

// DsiResult is the stress score for one district, recomputed on every run.
type DsiResult struct {
	District        string    `json:"district"`
	State           string    `json:"state"`
	DSI             float64   `json:"dsi"`
	Status          DsiStatus `json:"status"`
	Volume          int64     `json:"volume"`
	Capacity        int64     `json:"capacity"`
	AdultPercent    float64   `json:"adult_percent"`
	TotalPopulation int64     `json:"total_population"`
}
