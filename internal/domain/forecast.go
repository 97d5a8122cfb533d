package domain

// ForecastPoint is one day of the 7-day demand projection.
type ForecastPoint struct {
	Date         string  `json:"date"`
	DayName      string  `json:"day_name"`
	Predicted    int64   `json:"predicted"`
	LowEstimate  int64   `json:"low_estimate"`
	HighEstimate int64   `json:"high_estimate"`
	Confidence   float64 `json:"confidence"`
}

// ResourceRecommendation suggests additional centers for a state whose
// predicted demand outruns its estimated capacity.
type ResourceRecommendation struct {
	State                   string `json:"state"`
	CurrentCapacity         int64  `json:"current_capacity"`
	PredictedDemand         int64  `json:"predicted_demand"`
	AdditionalCentersNeeded int64  `json:"additional_centers_needed"`
	Priority                string `json:"priority"`
}
