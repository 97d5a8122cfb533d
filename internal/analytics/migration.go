package analytics

import (
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// Migration estimation constants.
const (
	// MigrationFraction is the share of an origin state's update volume
	// assumed to migrate along a corridor.
	MigrationFraction = 0.1

	// FallbackOriginVolume substitutes for an origin state absent from the
	// live aggregates.
	FallbackOriginVolume = 50000.0
)

// CorridorSpec is one hand-curated migration corridor. The change percent is
// domain knowledge, injected as configuration rather than derived from data.
type CorridorSpec struct {
	Origin        string
	Destination   string
	ChangePercent float64
}

// DefaultCorridors is the curated inter-state corridor table.
var DefaultCorridors = []CorridorSpec{
	{Origin: "Bihar", Destination: "Delhi", ChangePercent: 42},
	{Origin: "Uttar Pradesh", Destination: "Maharashtra", ChangePercent: 28},
	{Origin: "Rajasthan", Destination: "Gujarat", ChangePercent: 15},
	{Origin: "Madhya Pradesh", Destination: "Karnataka", ChangePercent: 8},
	{Origin: "Odisha", Destination: "Tamil Nadu", ChangePercent: 5},
	{Origin: "West Bengal", Destination: "Kerala", ChangePercent: 3},
	{Origin: "Jharkhand", Destination: "Haryana", ChangePercent: 12},
}

// EstimateCorridors enriches each corridor spec with a live volume: the
// migration fraction of the origin state's total update volume, or of the
// fallback constant when the origin has no biometric activity. An origin
// known only from demographics counts as absent. Output preserves spec
// order; a missing origin never fails the estimate.
func EstimateCorridors(states map[string]domain.StateActivity, specs []CorridorSpec) []domain.Corridor {
	corridors := make([]domain.Corridor, 0, len(specs))

	for _, spec := range specs {
		originVolume := FallbackOriginVolume
		if sa, ok := states[NormalizeKey(spec.Origin)]; ok && sa.TotalUpdates > 0 {
			originVolume = sa.TotalUpdates
		}

		corridors = append(corridors, domain.Corridor{
			Origin:        spec.Origin,
			Destination:   spec.Destination,
			Volume:        int64(originVolume * MigrationFraction),
			ChangePercent: spec.ChangePercent,
		})
	}

	return corridors
}
