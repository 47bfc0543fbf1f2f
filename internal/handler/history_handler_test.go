package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recyclelens/backend-go/internal/logging"
	"github.com/recyclelens/backend-go/internal/models"
	"github.com/recyclelens/backend-go/internal/service"
	"github.com/recyclelens/backend-go/internal/store"
	"github.com/recyclelens/backend-go/pkg/response"
)

type stubStore struct {
	table   models.RawTable
	readErr error
}

func (s *stubStore) Append(_ context.Context, _ models.DetectionRecord) error { return nil }

func (s *stubStore) ReadAll(_ context.Context) (models.RawTable, error) {
	return s.table, s.readErr
}

func historyRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHistoryHandler(service.NewHistoryService(st, logging.NewLogger()))

	r := gin.New()
	r.GET("/history", h.List)
	r.GET("/history/distribution", h.Distribution)
	r.GET("/history/hotspots", h.Hotspots)
	r.GET("/history/mapview", h.MapView)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func testTable() models.RawTable {
	return models.RawTable{
		Columns: models.CanonicalColumns,
		Rows: [][]string{
			{"2024-01-01 00:00:00", "plastic", "91.2", "-6.2", "106.8"},
			{"2024-01-02 00:00:00", "glass", "70.0", "0", "0"},
		},
	}
}

func TestHistoryList(t *testing.T) {
	r := historyRouter(&stubStore{table: testTable()})

	w, body := doGet(t, r, "/history")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body.Warning)

	data := body.Data.(map[string]interface{})
	assert.EqualValues(t, 2, data["count"])
}

func TestHistoryListFiltered(t *testing.T) {
	r := historyRouter(&stubStore{table: testTable()})

	w, body := doGet(t, r, "/history?category=plastic")
	assert.Equal(t, http.StatusOK, w.Code)

	data := body.Data.(map[string]interface{})
	assert.EqualValues(t, 1, data["count"])
}

func TestHistoryStoreDownReportsWarning(t *testing.T) {
	r := historyRouter(&stubStore{readErr: store.ErrStoreUnavailable})

	w, body := doGet(t, r, "/history")
	// Degraded, not failed: empty data plus a reported warning.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body.Warning)

	data := body.Data.(map[string]interface{})
	assert.EqualValues(t, 0, data["count"])
}

func TestDistributionEndpoint(t *testing.T) {
	r := historyRouter(&stubStore{table: testTable()})

	w, body := doGet(t, r, "/history/distribution")
	assert.Equal(t, http.StatusOK, w.Code)

	data := body.Data.(map[string]interface{})
	rows := data["distribution"].([]interface{})
	assert.Len(t, rows, 2)
}

func TestHotspotsEndpointExcludesSentinel(t *testing.T) {
	r := historyRouter(&stubStore{table: testTable()})

	w, body := doGet(t, r, "/history/hotspots")
	assert.Equal(t, http.StatusOK, w.Code)

	data := body.Data.(map[string]interface{})
	rows := data["hotspots"].([]interface{})
	require.Len(t, rows, 1)
	hs := rows[0].(map[string]interface{})
	assert.Equal(t, "plastic", hs["dominant_category"])
}

func TestMapViewEndpointNoValidLocations(t *testing.T) {
	table := models.RawTable{
		Columns: models.CanonicalColumns,
		Rows: [][]string{
			{"2024-01-01 00:00:00", "glass", "70.0", "0", "0"},
		},
	}
	r := historyRouter(&stubStore{table: table})

	w, body := doGet(t, r, "/history/mapview")
	assert.Equal(t, http.StatusOK, w.Code)

	data := body.Data.(map[string]interface{})
	assert.Equal(t, models.MapStateNoLocation, data["state"])
}
