package models

// Canonical field names for a detection record, in store column order.
const (
	FieldTimestamp  = "timestamp"
	FieldCategory   = "category"
	FieldConfidence = "confidence"
	FieldLatitude   = "latitude"
	FieldLongitude  = "longitude"
)

// CanonicalColumns is the expected store header, in positional-fallback order.
var CanonicalColumns = []string{
	FieldTimestamp,
	FieldCategory,
	FieldConfidence,
	FieldLatitude,
	FieldLongitude,
}

// DetectionRecord is one logged waste detection in canonical form.
// Numeric fields are pointers: nil means the store value was absent or
// unparseable. Rows with missing numerics survive normalization and are
// filtered out only by computations that need them.
type DetectionRecord struct {
	Timestamp  string   `json:"timestamp"`
	Category   string   `json:"category"`
	Confidence *float64 `json:"confidence,omitempty"` // Percentage 0-100
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// HasLocation reports whether the record is valid for spatial analysis:
// both coordinates parsed and the pair is not the (0,0) "no location" sentinel.
func (r DetectionRecord) HasLocation() bool {
	if r.Latitude == nil || r.Longitude == nil {
		return false
	}
	return *r.Latitude != 0 || *r.Longitude != 0
}

// RawTable is the untyped result of a full store scan: a header row plus
// string-valued data rows in storage order. Column names may differ from the
// canonical ones in case or order; the normalizer repairs that.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table carries no data rows.
func (t RawTable) Empty() bool {
	return len(t.Rows) == 0
}
