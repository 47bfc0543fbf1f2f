package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/recyclelens/backend-go/internal/models"
)

// SheetStore logs detections to a hosted spreadsheet through its values API.
// The first sheet row is the header; data rows follow in append order, which
// is the storage order the aggregation relies on.
type SheetStore struct {
	baseURL       string
	spreadsheetID string
	sheetRange    string
	apiKey        string
	client        *http.Client
	now           nowFunc
	log           *logrus.Logger
}

// SheetConfig configures the spreadsheet collaborator.
type SheetConfig struct {
	BaseURL       string
	SpreadsheetID string
	Range         string
	APIKey        string
	Timeout       time.Duration
}

// NewSheet creates a spreadsheet-backed store. The HTTP client carries the
// configured timeout; expiry surfaces as ErrStoreUnavailable like any other
// transport failure.
func NewSheet(cfg SheetConfig, logger *logrus.Logger) *SheetStore {
	return &SheetStore{
		baseURL:       cfg.BaseURL,
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    cfg.Range,
		apiKey:        cfg.APIKey,
		client:        &http.Client{Timeout: cfg.Timeout},
		now:           time.Now,
		log:           logger,
	}
}

type valuesPayload struct {
	Values [][]string `json:"values"`
}

// Append adds one row to the sheet, stamping the write time. Failed appends
// are reported, not retried.
func (s *SheetStore) Append(ctx context.Context, rec models.DetectionRecord) error {
	row := []string{
		s.now().Format(TimestampFormat),
		rec.Category,
		floatCell(rec.Confidence),
		floatCell(rec.Latitude),
		floatCell(rec.Longitude),
	}

	body, err := json.Marshal(valuesPayload{Values: [][]string{row}})
	if err != nil {
		return fmt.Errorf("failed to encode sheet row: %w", err)
	}

	appendURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW&key=%s",
		s.baseURL, s.spreadsheetID, url.PathEscape(s.sheetRange), url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, appendURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: append returned status %d", ErrStoreUnavailable, resp.StatusCode)
	}

	s.log.WithField("category", rec.Category).Info("detection appended to sheet")
	return nil
}

// ReadAll fetches the whole sheet. The header row becomes the table columns;
// a sheet with no values at all yields an empty table.
func (s *SheetStore) ReadAll(ctx context.Context) (models.RawTable, error) {
	readURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		s.baseURL, s.spreadsheetID, url.PathEscape(s.sheetRange), url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readURL, nil)
	if err != nil {
		return models.RawTable{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.RawTable{}, fmt.Errorf("%w: read returned status %d", ErrStoreUnavailable, resp.StatusCode)
	}

	var payload valuesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.RawTable{}, fmt.Errorf("%w: malformed sheet response: %v", ErrStoreUnavailable, err)
	}

	if len(payload.Values) == 0 {
		return models.RawTable{}, nil
	}
	return models.RawTable{
		Columns: payload.Values[0],
		Rows:    payload.Values[1:],
	}, nil
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
