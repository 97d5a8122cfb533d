package domain

// AnomalySeverity tiers a detected deviation.
type AnomalySeverity string

const (
	SeverityWarning  AnomalySeverity = "warning"
	SeverityCritical AnomalySeverity = "critical"
)

// AnomalyType marks the direction of the deviation.
type AnomalyType string

const (
	AnomalySurge AnomalyType = "surge"
	AnomalyDrop  AnomalyType = "drop"
)

// AnomalyRecord flags a district whose activity deviates from its expected
// baseline beyond the emit threshold.
type AnomalyRecord struct {
	State        string          `json:"state"`
	District     string          `json:"district"`
	DeviationPct float64         `json:"deviation"`
	Severity     AnomalySeverity `json:"severity"`
	Type         AnomalyType     `json:"type"`
}
