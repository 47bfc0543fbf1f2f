// Package history repairs raw store scans into canonical detection records.
//
// Spreadsheet-backed stores are edited by humans: headers drift in case and
// order, or get replaced wholesale. The normalizer maps whatever came back
// onto the canonical five-field schema without ever dropping a row.
package history

import (
	"strconv"
	"strings"

	"github.com/recyclelens/backend-go/internal/models"
)

// legacyAliases maps canonical field names to header names used by earlier
// sheet layouts. Matched case-insensitively, after the canonical names.
var legacyAliases = map[string][]string{
	models.FieldCategory:   {"jenis_sampah"},
	models.FieldConfidence: {"keyakinan_model"},
}

// Normalize converts a raw store scan into canonical detection records,
// preserving storage order.
//
// Field resolution, per canonical field:
//  1. a column whose name matches case-insensitively (canonical name first,
//     then legacy aliases);
//  2. if no name matches and the table has exactly five columns, the column
//     at the field's canonical position;
//  3. otherwise the field is absent for every row. Degraded, not fatal.
//
// Numeric fields that fail to parse become nil for that row only.
func Normalize(raw models.RawTable) []models.DetectionRecord {
	records := make([]models.DetectionRecord, 0, len(raw.Rows))
	if raw.Empty() {
		return records
	}

	idx := resolveColumns(raw.Columns)

	for _, row := range raw.Rows {
		rec := models.DetectionRecord{
			Timestamp: cell(row, idx[models.FieldTimestamp]),
			Category:  cell(row, idx[models.FieldCategory]),
		}
		rec.Confidence = parseNumeric(cell(row, idx[models.FieldConfidence]))
		rec.Latitude = parseNumeric(cell(row, idx[models.FieldLatitude]))
		rec.Longitude = parseNumeric(cell(row, idx[models.FieldLongitude]))
		records = append(records, rec)
	}

	return records
}

// resolveColumns maps each canonical field to a column index, or -1 when the
// field cannot be resolved.
func resolveColumns(columns []string) map[string]int {
	idx := make(map[string]int, len(models.CanonicalColumns))
	positionalOK := len(columns) == len(models.CanonicalColumns)

	for pos, field := range models.CanonicalColumns {
		idx[field] = -1

		if i := matchColumn(columns, field); i >= 0 {
			idx[field] = i
			continue
		}
		for _, alias := range legacyAliases[field] {
			if i := matchColumn(columns, alias); i >= 0 {
				idx[field] = i
				break
			}
		}
		if idx[field] < 0 && positionalOK {
			// Strict positional fallback: timestamp, category, confidence,
			// latitude, longitude.
			idx[field] = pos
		}
	}

	return idx
}

func matchColumn(columns []string, name string) int {
	for i, col := range columns {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseNumeric(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
