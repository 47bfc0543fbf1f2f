package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreSheet  = "sheet"
)

// Config is the process configuration, loaded once at startup.
type Config struct {
	Port string

	// Detection record store.
	StoreBackend  string
	DBPath        string
	SheetBaseURL  string
	SpreadsheetID string
	SheetRange    string
	SheetAPIKey   string
	StoreTimeout  time.Duration

	// Classifier inference endpoint. Empty means the built-in stub, for
	// development without a model server.
	ClassifierURL     string
	ClassifierTimeout time.Duration

	// Upload rate limiting.
	UploadRateLimit  int
	UploadRateWindow time.Duration
}

// Load reads configuration from the environment, after loading a local .env
// file when present.
func Load(logger *logrus.Logger) *Config {
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	return &Config{
		Port:              getEnv("PORT", ":8080"),
		StoreBackend:      getEnv("STORE_BACKEND", StoreSQLite),
		DBPath:            getEnv("DB_PATH", "./data/detections.db"),
		SheetBaseURL:      getEnv("SHEET_BASE_URL", "https://sheets.googleapis.com"),
		SpreadsheetID:     getEnv("SPREADSHEET_ID", ""),
		SheetRange:        getEnv("SHEET_RANGE", "Sheet1"),
		SheetAPIKey:       getEnv("SHEET_API_KEY", ""),
		StoreTimeout:      getEnvDuration("STORE_TIMEOUT", 10*time.Second),
		ClassifierURL:     getEnv("CLASSIFIER_URL", ""),
		ClassifierTimeout: getEnvDuration("CLASSIFIER_TIMEOUT", 15*time.Second),
		UploadRateLimit:   getEnvInt("UPLOAD_RATE_LIMIT", 30),
		UploadRateWindow:  getEnvDuration("UPLOAD_RATE_WINDOW", time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}
