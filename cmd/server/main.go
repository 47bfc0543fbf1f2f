package main

import (
	"context"
	"net/http"

	"github.com/recyclelens/backend-go/internal/api"
	"github.com/recyclelens/backend-go/internal/classifier"
	"github.com/recyclelens/backend-go/internal/config"
	"github.com/recyclelens/backend-go/internal/database"
	"github.com/recyclelens/backend-go/internal/logging"
	"github.com/recyclelens/backend-go/internal/service"
	"github.com/recyclelens/backend-go/internal/store"
	"github.com/recyclelens/backend-go/internal/waste"
)

func main() {
	logger := logging.NewLoggerWithService("recyclelens-backend")
	cfg := config.Load(logger)

	// Both collaborators are built once and held for the process lifetime;
	// construction failure is fatal at startup, not per-request.
	var st store.Store
	switch cfg.StoreBackend {
	case config.StoreSheet:
		if cfg.SpreadsheetID == "" {
			logger.Fatal("SPREADSHEET_ID is required for the sheet store backend")
		}
		st = store.NewSheet(store.SheetConfig{
			BaseURL:       cfg.SheetBaseURL,
			SpreadsheetID: cfg.SpreadsheetID,
			Range:         cfg.SheetRange,
			APIKey:        cfg.SheetAPIKey,
			Timeout:       cfg.StoreTimeout,
		}, logger)
	case config.StoreSQLite:
		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			logger.WithError(err).Fatal("failed to initialize detection database")
		}
		defer db.Close()
		st = store.NewSQLite(db)
	default:
		logger.Fatalf("unknown store backend %q", cfg.StoreBackend)
	}

	var clf classifier.Classifier
	if cfg.ClassifierURL != "" {
		remote := classifier.NewRemote(cfg.ClassifierURL, &http.Client{Timeout: cfg.ClassifierTimeout}, logger)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ClassifierTimeout)
		err := remote.Ping(ctx)
		cancel()
		if err != nil {
			logger.WithError(err).Fatal("classifier endpoint check failed")
		}
		clf = remote
	} else {
		logger.Warn("CLASSIFIER_URL not set, using stub classifier")
		clf = classifier.Static{Result: classifier.Prediction{Category: waste.Trash, Confidence: 0}}
	}

	detection := service.NewDetectionService(clf, st, logger)
	hist := service.NewHistoryService(st, logger)

	router := api.SetupRouter(cfg, logger, detection, hist)

	logger.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(cfg.Port); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
