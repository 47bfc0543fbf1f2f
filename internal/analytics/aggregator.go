// Package analytics derives the history views: category distribution,
// grid-cell hotspots, map view state and the headline insights.
//
// Everything here is a full recomputation over one read-only snapshot of the
// store; nothing is cached between requests.
package analytics

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/recyclelens/backend-go/internal/models"
	"github.com/recyclelens/backend-go/internal/spatial"
	"github.com/recyclelens/backend-go/internal/waste"
)

// FilterByCategory returns the records whose category matches
// case-insensitively, preserving snapshot order. An empty or "all" category
// passes everything through.
func FilterByCategory(records []models.DetectionRecord, category string) []models.DetectionRecord {
	if category == "" || strings.EqualFold(category, "all") {
		return records
	}
	filtered := make([]models.DetectionRecord, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(r.Category, category) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Distribution groups the records by category and expresses each count as a
// percentage of the total, rounded to 2 decimal places. Rows are ordered by
// descending count; equal counts keep first-seen category order, which makes
// the ordering deterministic for a given snapshot.
func Distribution(records []models.DetectionRecord) []models.DistributionRow {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	total := len(records)
	rows := make([]models.DistributionRow, 0, len(order))
	for _, cat := range order {
		rows = append(rows, models.DistributionRow{
			Category:   cat,
			Count:      counts[cat],
			Percentage: round2(float64(counts[cat]) / float64(total) * 100),
		})
	}

	// Stable sort on top of first-seen order keeps ties deterministic.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// ValidLocations returns the subset of records valid for spatial analysis:
// both coordinates parsed and not the (0,0) sentinel. Order is preserved.
func ValidLocations(records []models.DetectionRecord) []models.DetectionRecord {
	valid := make([]models.DetectionRecord, 0, len(records))
	for _, r := range records {
		if r.HasLocation() {
			valid = append(valid, r)
		}
	}
	return valid
}

type cellKey struct {
	lat, lon float64
}

// Hotspots buckets the spatially valid records into a 4-decimal coordinate
// grid and selects the dominant category per cell. Ties on the maximum count
// resolve to the category whose first record appears earliest in the snapshot.
// Rows come back in first-seen cell order.
func Hotspots(records []models.DetectionRecord) []models.Hotspot {
	valid := ValidLocations(records)

	cellOrder := make([]cellKey, 0)
	totals := make(map[cellKey]int)
	counts := make(map[cellKey]map[string]int)
	catOrder := make(map[cellKey][]string)

	for _, r := range valid {
		key := cellKey{
			lat: spatial.RoundCoord(*r.Latitude),
			lon: spatial.RoundCoord(*r.Longitude),
		}
		if _, seen := totals[key]; !seen {
			cellOrder = append(cellOrder, key)
			counts[key] = make(map[string]int)
		}
		if _, seen := counts[key][r.Category]; !seen {
			catOrder[key] = append(catOrder[key], r.Category)
		}
		counts[key][r.Category]++
		totals[key]++
	}

	hotspots := make([]models.Hotspot, 0, len(cellOrder))
	for _, key := range cellOrder {
		dominant := ""
		best := 0
		for _, cat := range catOrder[key] {
			if counts[key][cat] > best {
				dominant = cat
				best = counts[key][cat]
			}
		}
		hotspots = append(hotspots, models.Hotspot{
			Latitude:         key.lat,
			Longitude:        key.lon,
			DominantCategory: dominant,
			DominantCount:    best,
			TotalCount:       totals[key],
		})
	}
	return hotspots
}

// MapViewFor derives the map state for the filtered records. A focused record
// (matched by timestamp among the spatially valid subset) centers the map on
// its exact coordinates at close zoom; otherwise the center is the arithmetic
// mean of all valid coordinates at the overview zoom. With no valid locations
// there is no map, only the no-data state.
func MapViewFor(records []models.DetectionRecord, focus string) models.MapView {
	valid := ValidLocations(records)
	if len(valid) == 0 {
		return models.MapView{State: models.MapStateNoLocation}
	}

	view := models.MapView{State: models.MapStateOK}

	var focused *models.DetectionRecord
	if focus != "" {
		for i := range valid {
			if valid[i].Timestamp == focus {
				focused = &valid[i]
				break
			}
		}
	}

	if focused != nil {
		view.CenterLat = *focused.Latitude
		view.CenterLon = *focused.Longitude
		view.Zoom = models.ZoomFocus
	} else {
		lats := make([]float64, len(valid))
		lons := make([]float64, len(valid))
		for i, r := range valid {
			lats[i] = *r.Latitude
			lons[i] = *r.Longitude
		}
		view.CenterLat = stat.Mean(lats, nil)
		view.CenterLon = stat.Mean(lons, nil)
		view.Zoom = models.ZoomOverview
	}

	for _, r := range valid {
		conf := 0.0
		if r.Confidence != nil {
			conf = *r.Confidence
		}
		view.Markers = append(view.Markers, models.Marker{
			Latitude:   *r.Latitude,
			Longitude:  *r.Longitude,
			Category:   r.Category,
			Color:      waste.MarkerColor(r.Category),
			Confidence: conf,
			Timestamp:  r.Timestamp,
			Focused:    focused != nil && r.Timestamp == focus,
		})
		if d := spatial.HaversineDistance(view.CenterLat, view.CenterLon, *r.Latitude, *r.Longitude); d > view.CoverageRadiusM {
			view.CoverageRadiusM = d
		}
	}

	return view
}

// InsightsFrom reduces the computed tables to the headline numbers: the most
// common category, the highest-concentration cell and how many distinct
// dominant categories the cells show.
func InsightsFrom(distribution []models.DistributionRow, hotspots []models.Hotspot) models.Insights {
	var ins models.Insights
	if len(distribution) > 0 {
		ins.MostCommonCategory = distribution[0].Category
		ins.MostCommonPct = distribution[0].Percentage
	}
	variety := make(map[string]struct{})
	for i := range hotspots {
		variety[hotspots[i].DominantCategory] = struct{}{}
		if ins.TopHotspot == nil || hotspots[i].DominantCount > ins.TopHotspot.DominantCount {
			ins.TopHotspot = &hotspots[i]
		}
	}
	ins.DominantVariety = len(variety)
	return ins
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
