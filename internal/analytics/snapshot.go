package analytics

import (
	"time"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// View size limits carried by the snapshot document.
const (
	StressedDistrictsLimit = 50
	BlueZonesLimit         = 20
	AnomaliesLimit         = 20
)

// BuildSnapshot runs the full aggregation-and-scoring pipeline over the
// loaded tables and assembles the dashboard result document. Pure except
// for the caller-supplied clock; empty tables yield empty views, never an
// error.
func BuildSnapshot(t *domain.Tables, corridors []CorridorSpec, now time.Time) *domain.DashboardSnapshot {
	if t == nil {
		t = domain.EmptyTables()
	}
	if corridors == nil {
		corridors = DefaultCorridors
	}

	aggs := BuildDistrictAggregates(t)
	results := ScoreDistricts(aggs)
	states := BuildStateActivity(t)

	// Views built on update volume are meaningless without the biometric
	// dataset: every district would read as a total drop. Report them empty
	// instead.
	anomalies := []domain.AnomalyRecord{}
	deadCenters := []domain.DeadCenter{}
	if !t.Biometric.Empty() {
		anomalies = DetectAnomalies(aggs, nil, AnomaliesLimit)
		deadCenters = DeadCenters(aggs, 0)
	}

	return &domain.DashboardSnapshot{
		KPIs:               BuildKPIs(aggs, results, now),
		StressedDistricts:  RankStressed(results, StressedDistrictsLimit),
		MapMarkers:         BuildMapMarkers(aggs, results),
		MigrationCorridors: EstimateCorridors(states, corridors),
		ChildGaps:          ChildGaps(aggs, 0),
		BlueZones:          TopBlueZones(aggs, BlueZonesLimit),
		DeadCenters:        deadCenters,
		Anomalies:          anomalies,
		DemandForecast:     Forecast7Day(DemandBaseline(t), now),
		GeneratedAt:        now,
	}
}
