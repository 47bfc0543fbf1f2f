package service

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/recyclelens/backend-go/internal/classifier"
	"github.com/recyclelens/backend-go/internal/models"
	"github.com/recyclelens/backend-go/internal/waste"
)

// DetectionResult is the outcome of classifying one uploaded image:
// the label, the confidence as a percentage, and the recycling guidance.
type DetectionResult struct {
	Category   string           `json:"category"`
	Confidence float64          `json:"confidence"` // Percentage 0-100
	Guide      *waste.GuideEntry `json:"guide,omitempty"`
}

// DetectionService runs the detection flow: decode, classify, and optionally
// append the result to the record store.
type DetectionService struct {
	clf   classifier.Classifier
	store StoreAppender
	log   *logrus.Logger
}

// StoreAppender is the write half of the record store contract.
type StoreAppender interface {
	Append(ctx context.Context, rec models.DetectionRecord) error
}

// NewDetectionService creates a detection service.
func NewDetectionService(clf classifier.Classifier, store StoreAppender, logger *logrus.Logger) *DetectionService {
	return &DetectionService{clf: clf, store: store, log: logger}
}

// Detect decodes the image and runs one classification pass.
func (s *DetectionService) Detect(ctx context.Context, r io.Reader) (DetectionResult, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return DetectionResult{}, fmt.Errorf("failed to decode image: %w", err)
	}

	pred, err := s.clf.Classify(ctx, img)
	if err != nil {
		return DetectionResult{}, err
	}

	result := DetectionResult{
		Category:   pred.Category,
		Confidence: pred.Confidence * 100,
	}
	if entry, ok := waste.Guide(pred.Category); ok {
		result.Guide = &entry
	}

	s.log.WithFields(logrus.Fields{
		"category":   result.Category,
		"confidence": result.Confidence,
		"format":     format,
	}).Info("image classified")
	return result, nil
}

// Save appends a detection to the record store. Confidence is a percentage;
// coordinates default to the (0,0) "no location" sentinel when the browser
// provided none. The store assigns the write timestamp.
func (s *DetectionService) Save(ctx context.Context, category string, confidence, lat, lon float64) error {
	rec := models.DetectionRecord{
		Category:   category,
		Confidence: &confidence,
		Latitude:   &lat,
		Longitude:  &lon,
	}
	if err := s.store.Append(ctx, rec); err != nil {
		s.log.WithError(err).Warn("failed to save detection")
		return err
	}
	return nil
}
