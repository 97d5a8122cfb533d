package analytics

import (
	"hash/fnv"
	"math"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// stateBounds are approximate rectangular regions per state:
// (minLat, maxLat, minLng, maxLng). Markers land inside their state's box.
type bounds struct {
	minLat, maxLat, minLng, maxLng float64
}

var stateBounds = map[string]bounds{
	// North India
	"delhi":             {28.4, 28.9, 76.8, 77.4},
	"haryana":           {27.6, 30.9, 74.4, 77.6},
	"punjab":            {29.5, 32.5, 73.8, 76.9},
	"himachal pradesh":  {30.4, 33.2, 75.5, 79.0},
	"uttarakhand":       {28.7, 31.5, 77.5, 81.0},
	"jammu and kashmir": {32.2, 37.0, 73.5, 80.3},
	"ladakh":            {32.5, 36.0, 75.5, 79.5},
	// Central India
	"uttar pradesh":  {23.8, 30.4, 77.0, 84.6},
	"madhya pradesh": {21.0, 26.9, 74.0, 82.8},
	"chhattisgarh":   {17.8, 24.1, 80.2, 84.4},
	// East India
	"bihar":       {24.2, 27.5, 83.2, 88.2},
	"jharkhand":   {21.9, 25.3, 83.3, 87.9},
	"west bengal": {21.5, 27.2, 85.8, 89.9},
	"odisha":      {17.8, 22.6, 81.3, 87.5},
	// Northeast India
	"assam":             {24.1, 27.9, 89.6, 96.0},
	"meghalaya":         {25.0, 26.1, 89.8, 92.8},
	"tripura":           {22.9, 24.5, 91.1, 92.3},
	"mizoram":           {21.9, 24.5, 92.2, 93.5},
	"manipur":           {23.8, 25.7, 93.0, 94.8},
	"nagaland":          {25.2, 27.0, 93.3, 95.3},
	"arunachal pradesh": {26.5, 29.5, 91.5, 97.5},
	"sikkim":            {27.0, 28.1, 88.0, 88.9},
	// West India
	"rajasthan":   {23.0, 30.2, 69.3, 78.3},
	"gujarat":     {20.0, 24.7, 68.1, 74.5},
	"maharashtra": {15.6, 22.0, 72.6, 80.9},
	"goa":         {14.9, 15.8, 73.6, 74.3},
	// South India
	"karnataka":      {11.6, 18.5, 74.0, 78.6},
	"andhra pradesh": {12.6, 19.1, 76.7, 84.8},
	"telangana":      {15.8, 19.9, 77.2, 81.3},
	"tamil nadu":     {8.0, 13.6, 76.2, 80.4},
	"kerala":         {8.2, 12.8, 74.8, 77.4},
	"puducherry":     {10.7, 12.0, 79.5, 80.0},
	// Union Territories
	"chandigarh": {30.6, 30.8, 76.7, 76.9},
}

// defaultBounds is a central-India fallback for unmapped states.
var defaultBounds = bounds{20.0, 28.0, 75.0, 85.0}

// MarkerCoordinates derives a stable synthetic coordinate for a district
// inside its state's bounding box. FNV-1a of the district+state key splits
// into independent lat/lng factors, so the same district always maps to the
// same point while neighbouring districts spread across the box.
func MarkerCoordinates(state, district string) (lat, lng float64) {
	box, ok := stateBounds[NormalizeKey(state)]
	if !ok {
		box = defaultBounds
	}

	h := fnv.New64a()
	h.Write([]byte(NormalizeKey(district) + NormalizeKey(state)))
	sum := h.Sum64()

	latFactor := float64(sum&0xFFFF) / 65535.0
	lngFactor := float64((sum>>16)&0xFFFF) / 65535.0

	lat = round4(box.minLat + latFactor*(box.maxLat-box.minLat))
	lng = round4(box.minLng + lngFactor*(box.maxLng-box.minLng))
	return lat, lng
}

// BuildMapMarkers produces one map marker per scored district. aggs and
// results must be index-aligned.
func BuildMapMarkers(aggs []domain.DistrictAggregate, results []domain.DsiResult) []domain.MapMarker {
	markers := make([]domain.MapMarker, 0, len(results))
	for i, r := range results {
		lat, lng := MarkerCoordinates(r.State, r.District)
		marker := domain.MapMarker{
			District:     r.District,
			State:        r.State,
			Lat:          lat,
			Lng:          lng,
			DSI:          r.DSI,
			Status:       r.Status,
			Population:   r.TotalPopulation,
			Capacity:     r.Capacity,
			AdultPercent: r.AdultPercent,
		}
		if i < len(aggs) {
			marker.SeniorCount = int64(aggs[i].SeniorCount)
		}
		markers = append(markers, marker)
	}
	return markers
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
