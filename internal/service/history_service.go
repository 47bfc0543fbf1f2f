package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/recyclelens/backend-go/internal/analytics"
	"github.com/recyclelens/backend-go/internal/history"
	"github.com/recyclelens/backend-go/internal/models"
	"github.com/recyclelens/backend-go/internal/store"
)

// HistoryService serves the history and analytics views. Every call re-reads
// the full store and recomputes from scratch; the snapshot is never cached
// across requests.
type HistoryService struct {
	store store.Store
	log   *logrus.Logger
}

// NewHistoryService creates a history service.
func NewHistoryService(st store.Store, logger *logrus.Logger) *HistoryService {
	return &HistoryService{store: st, log: logger}
}

// Snapshot reads and normalizes the full store. A read failure degrades to an
// empty record set; the error is returned alongside so callers can report it,
// but it never aborts the view.
func (s *HistoryService) Snapshot(ctx context.Context) ([]models.DetectionRecord, error) {
	raw, err := s.store.ReadAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("store read failed, serving empty history")
		return []models.DetectionRecord{}, err
	}
	return history.Normalize(raw), nil
}

// History returns the filtered snapshot.
func (s *HistoryService) History(ctx context.Context, filter models.HistoryFilter) ([]models.DetectionRecord, error) {
	records, err := s.Snapshot(ctx)
	return analytics.FilterByCategory(records, filter.Category), err
}

// Distribution returns the category distribution over the filtered snapshot,
// with the most-common-category insight.
func (s *HistoryService) Distribution(ctx context.Context, filter models.HistoryFilter) ([]models.DistributionRow, models.Insights, error) {
	records, err := s.History(ctx, filter)
	dist := analytics.Distribution(records)
	return dist, analytics.InsightsFrom(dist, nil), err
}

// Hotspots returns the grid-cell hotspot table over the spatially valid
// subset of the filtered snapshot, with the concentration insights.
func (s *HistoryService) Hotspots(ctx context.Context, filter models.HistoryFilter) ([]models.Hotspot, models.Insights, error) {
	records, err := s.History(ctx, filter)
	hotspots := analytics.Hotspots(records)
	return hotspots, analytics.InsightsFrom(nil, hotspots), err
}

// MapView returns the point-map state for the filtered snapshot.
func (s *HistoryService) MapView(ctx context.Context, filter models.HistoryFilter) (models.MapView, error) {
	records, err := s.History(ctx, filter)
	return analytics.MapViewFor(records, filter.Focus), err
}
