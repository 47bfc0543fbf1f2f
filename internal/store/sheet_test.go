package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recyclelens/backend-go/internal/logging"
	"github.com/recyclelens/backend-go/internal/models"
)

func newTestSheet(t *testing.T, handler http.Handler) *SheetStore {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := NewSheet(SheetConfig{
		BaseURL:       srv.URL,
		SpreadsheetID: "sheet-123",
		Range:         "Sheet1",
		APIKey:        "test-key",
		Timeout:       2 * time.Second,
	}, logging.NewLogger())
	s.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestSheetReadAll(t *testing.T) {
	s := newTestSheet(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.URL.Path, "sheet-123")
		json.NewEncoder(w).Encode(valuesPayload{Values: [][]string{
			{"timestamp", "category", "confidence", "latitude", "longitude"},
			{"2024-01-01 00:00:00", "plastic", "91.2", "-6.2", "106.8"},
		}})
	}))

	table, err := s.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"timestamp", "category", "confidence", "latitude", "longitude"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "plastic", table.Rows[0][1])
}

func TestSheetReadAllEmptySheet(t *testing.T) {
	s := newTestSheet(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(valuesPayload{})
	}))

	table, err := s.ReadAll(context.Background())
	require.NoError(t, err)
	assert.True(t, table.Empty())
}

func TestSheetAppendPostsRow(t *testing.T) {
	var got valuesPayload
	s := newTestSheet(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	err := s.Append(context.Background(), models.DetectionRecord{
		Category:   "glass",
		Confidence: f(77.5),
		Latitude:   f(1.5),
		Longitude:  f(2.5),
	})
	require.NoError(t, err)

	require.Len(t, got.Values, 1)
	assert.Equal(t, []string{"2024-06-01 12:00:00", "glass", "77.5", "1.5", "2.5"}, got.Values[0])
}

func TestSheetUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	s := NewSheet(SheetConfig{
		BaseURL:       srv.URL,
		SpreadsheetID: "sheet-123",
		Range:         "Sheet1",
		Timeout:       500 * time.Millisecond,
	}, logging.NewLogger())

	_, err := s.ReadAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	err = s.Append(context.Background(), models.DetectionRecord{Category: "trash"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestSheetServerError(t *testing.T) {
	s := newTestSheet(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := s.ReadAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
