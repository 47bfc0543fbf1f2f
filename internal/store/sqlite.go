package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/recyclelens/backend-go/internal/models"
)

// SQLiteStore is the local detection log, backed by the detections table.
type SQLiteStore struct {
	db  *sql.DB
	now nowFunc
}

// NewSQLite creates a store over an opened database handle.
func NewSQLite(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// Append inserts one record, stamping it with the current write time.
func (s *SQLiteStore) Append(ctx context.Context, rec models.DetectionRecord) error {
	query := `INSERT INTO detections (timestamp, category, confidence, latitude, longitude)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		s.now().Format(TimestampFormat),
		rec.Category,
		nullable(rec.Confidence),
		nullable(rec.Latitude),
		nullable(rec.Longitude),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ReadAll scans every record in insertion order. Values come back as strings,
// matching what a spreadsheet scan would return.
func (s *SQLiteStore) ReadAll(ctx context.Context) (models.RawTable, error) {
	query := `SELECT timestamp, category, confidence, latitude, longitude
		FROM detections ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return models.RawTable{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	table := models.RawTable{Columns: append([]string(nil), models.CanonicalColumns...)}
	for rows.Next() {
		var ts, cat string
		var conf, lat, lon sql.NullFloat64
		if err := rows.Scan(&ts, &cat, &conf, &lat, &lon); err != nil {
			return models.RawTable{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		table.Rows = append(table.Rows, []string{
			ts, cat, formatFloat(conf), formatFloat(lat), formatFloat(lon),
		})
	}
	if err := rows.Err(); err != nil {
		return models.RawTable{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return table, nil
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func formatFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}
