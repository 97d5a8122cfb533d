package domain

// Corridor is a known origin->destination migration flow enriched with the
// live origin-state volume. ChangePercent is curated domain knowledge, not
// derived from the datasets.
type Corridor struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Volume        int64   `json:"volume"`
	ChangePercent float64 `json:"change_percent"`
}
