package history

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recyclelens/backend-go/internal/models"
)

func canonicalTable(rows [][]string) models.RawTable {
	return models.RawTable{
		Columns: []string{"timestamp", "category", "confidence", "latitude", "longitude"},
		Rows:    rows,
	}
}

func TestNormalizeEmptyTable(t *testing.T) {
	records := Normalize(models.RawTable{})
	require.NotNil(t, records)
	assert.Empty(t, records)

	// Header only, no data rows.
	records = Normalize(canonicalTable(nil))
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNormalizeCanonicalIsIdempotent(t *testing.T) {
	table := canonicalTable([][]string{
		{"2024-01-01 00:00:00", "plastic", "91.2", "-6.2", "106.8"},
		{"2024-01-02 12:30:00", "glass", "77.5", "0", "0"},
	})

	first := Normalize(table)

	// Re-serialize the canonical records and normalize again.
	rows := make([][]string, 0, len(first))
	for _, r := range first {
		rows = append(rows, []string{
			r.Timestamp,
			r.Category,
			strconv.FormatFloat(*r.Confidence, 'f', -1, 64),
			strconv.FormatFloat(*r.Latitude, 'f', -1, 64),
			strconv.FormatFloat(*r.Longitude, 'f', -1, 64),
		})
	}
	second := Normalize(canonicalTable(rows))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("normalization not idempotent (-first +second):\n%s", diff)
	}
}

func TestNormalizePermutedColumns(t *testing.T) {
	canonical := Normalize(canonicalTable([][]string{
		{"2024-01-01 00:00:00", "metal", "64.3", "1.5", "2.5"},
	}))

	permuted := Normalize(models.RawTable{
		Columns: []string{"longitude", "confidence", "timestamp", "latitude", "category"},
		Rows: [][]string{
			{"2.5", "64.3", "2024-01-01 00:00:00", "1.5", "metal"},
		},
	})

	if diff := cmp.Diff(canonical, permuted); diff != "" {
		t.Errorf("permuted columns changed the result (-canonical +permuted):\n%s", diff)
	}
}

func TestNormalizeCaseInsensitiveHeaders(t *testing.T) {
	records := Normalize(models.RawTable{
		Columns: []string{"Timestamp", "CATEGORY", "Confidence", "LATITUDE", "Longitude"},
		Rows: [][]string{
			{"2024-03-01 08:00:00", "paper", "88.1", "3.14", "101.7"},
		},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "paper", records[0].Category)
	require.NotNil(t, records[0].Confidence)
	assert.InDelta(t, 88.1, *records[0].Confidence, 1e-9)
}

func TestNormalizePositionalFallback(t *testing.T) {
	records := Normalize(models.RawTable{
		Columns: []string{"col_a", "col_b", "col_c", "col_d", "col_e"},
		Rows: [][]string{
			{"2024-01-01 00:00:00", "plastic", "91.2", "-6.2", "106.8"},
		},
	})

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "2024-01-01 00:00:00", r.Timestamp)
	assert.Equal(t, "plastic", r.Category)
	require.NotNil(t, r.Confidence)
	assert.InDelta(t, 91.2, *r.Confidence, 1e-9)
	require.NotNil(t, r.Latitude)
	assert.InDelta(t, -6.2, *r.Latitude, 1e-9)
	require.NotNil(t, r.Longitude)
	assert.InDelta(t, 106.8, *r.Longitude, 1e-9)
}

func TestNormalizeUnresolvableColumnsDegrade(t *testing.T) {
	// Six unknown columns: no name match, no positional fallback. Rows
	// survive with every field absent.
	records := Normalize(models.RawTable{
		Columns: []string{"a", "b", "c", "d", "e", "f"},
		Rows: [][]string{
			{"x", "y", "z", "1", "2", "3"},
			{"u", "v", "w", "4", "5", "6"},
		},
	})

	require.Len(t, records, 2)
	for _, r := range records {
		assert.Empty(t, r.Timestamp)
		assert.Empty(t, r.Category)
		assert.Nil(t, r.Confidence)
		assert.Nil(t, r.Latitude)
		assert.Nil(t, r.Longitude)
	}
}

func TestNormalizeLegacySheetHeaders(t *testing.T) {
	records := Normalize(models.RawTable{
		Columns: []string{"timestamp", "jenis_sampah", "keyakinan_model", "latitude", "longitude"},
		Rows: [][]string{
			{"2024-05-05 10:00:00", "cardboard", "59.9", "-6.9", "107.6"},
		},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "cardboard", records[0].Category)
	require.NotNil(t, records[0].Confidence)
	assert.InDelta(t, 59.9, *records[0].Confidence, 1e-9)
}

func TestNormalizeUnparseableNumericsBecomeMissing(t *testing.T) {
	records := Normalize(canonicalTable([][]string{
		{"2024-01-01 00:00:00", "glass", "not-a-number", "abc", "106.8"},
	}))

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "glass", r.Category)
	assert.Nil(t, r.Confidence)
	assert.Nil(t, r.Latitude)
	require.NotNil(t, r.Longitude)
	assert.False(t, r.HasLocation())
}

func TestNormalizeShortRows(t *testing.T) {
	records := Normalize(canonicalTable([][]string{
		{"2024-01-01 00:00:00", "trash"},
	}))

	require.Len(t, records, 1)
	assert.Equal(t, "trash", records[0].Category)
	assert.Nil(t, records[0].Confidence)
	assert.Nil(t, records[0].Latitude)
	assert.Nil(t, records[0].Longitude)
}
