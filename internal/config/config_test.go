package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/recyclelens/backend-go/internal/logging"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_BACKEND", "DB_PATH", "SHEET_RANGE", "STORE_TIMEOUT", "UPLOAD_RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg := Load(logging.NewLogger())

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.StoreBackend)
	assert.Equal(t, "./data/detections.db", cfg.DBPath)
	assert.Equal(t, "Sheet1", cfg.SheetRange)
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 30, cfg.UploadRateLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", ":9999")
	t.Setenv("STORE_BACKEND", StoreSheet)
	t.Setenv("SPREADSHEET_ID", "sheet-abc")
	t.Setenv("STORE_TIMEOUT", "3s")
	t.Setenv("UPLOAD_RATE_LIMIT", "5")

	cfg := Load(logging.NewLogger())

	assert.Equal(t, ":9999", cfg.Port)
	assert.Equal(t, StoreSheet, cfg.StoreBackend)
	assert.Equal(t, "sheet-abc", cfg.SpreadsheetID)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 5, cfg.UploadRateLimit)
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("UPLOAD_RATE_LIMIT", "many")

	cfg := Load(logging.NewLogger())
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 30, cfg.UploadRateLimit)
}
