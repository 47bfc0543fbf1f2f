package models

// DistributionRow is one category's share of the filtered detection set.
type DistributionRow struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // Of filtered total, rounded to 2 decimals
}

// Hotspot is one grid cell with its dominant waste category. The cell key is
// the coordinates rounded to 4 decimal places (~11m resolution).
type Hotspot struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	DominantCategory string  `json:"dominant_category"`
	DominantCount    int     `json:"dominant_count"`
	TotalCount       int     `json:"total_count"`
}

// Marker is a single plottable detection for the point map.
type Marker struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
	Focused    bool    `json:"focused,omitempty"`
}

// Map view states.
const (
	MapStateOK         = "ok"
	MapStateNoLocation = "no_valid_location_data"
)

// Zoom levels matching the dashboard map: close-up when a single record is
// focused, wider for the overview.
const (
	ZoomFocus    = 18
	ZoomOverview = 15
)

// MapView is the derived state for the point map: center, zoom and markers.
// When no record in the filtered set is valid for spatial analysis, State is
// MapStateNoLocation and no map should be rendered.
type MapView struct {
	State           string   `json:"state"`
	CenterLat       float64  `json:"center_lat,omitempty"`
	CenterLon       float64  `json:"center_lon,omitempty"`
	Zoom            int      `json:"zoom,omitempty"`
	CoverageRadiusM float64  `json:"coverage_radius_m,omitempty"`
	Markers         []Marker `json:"markers,omitempty"`
}

// Insights are simple reductions over the distribution and hotspot tables.
type Insights struct {
	MostCommonCategory string   `json:"most_common_category,omitempty"`
	MostCommonPct      float64  `json:"most_common_pct,omitempty"`
	TopHotspot         *Hotspot `json:"top_hotspot,omitempty"`
	DominantVariety    int      `json:"dominant_variety,omitempty"`
}

// HistoryFilter holds the per-request view selection: an optional category
// filter ("" or "all" means no filter) and an optional focused record,
// identified by its timestamp as in the dashboard's focus selector.
type HistoryFilter struct {
	Category string `form:"category"`
	Focus    string `form:"focus"`
}

// FiltersAll reports whether the filter passes every category through.
func (f HistoryFilter) FiltersAll() bool {
	return f.Category == "" || f.Category == "all"
}
