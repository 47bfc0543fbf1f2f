package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"net/http"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/recyclelens/backend-go/internal/waste"
)

// Remote calls a TF-Serving style JSON inference endpoint. It is constructed
// once at startup and reused for the process lifetime.
type Remote struct {
	url    string
	client *http.Client
	labels []string
	log    *logrus.Logger
}

// NewRemote creates a classifier client for the given predict URL. The
// http.Client must carry a bounded timeout; inference either completes or
// fails synchronously.
func NewRemote(url string, client *http.Client, logger *logrus.Logger) *Remote {
	return &Remote{
		url:    url,
		client: client,
		labels: waste.Categories,
		log:    logger,
	}
}

type predictRequest struct {
	Instances [][][][]float32 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

// Ping checks that the inference endpoint is reachable. Used at startup so a
// misconfigured model surfaces as a fatal condition, not a per-request one.
func (r *Remote) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("classifier endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("classifier endpoint unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// Classify preprocesses the image, runs one forward pass remotely and returns
// the label with the maximum class probability.
func (r *Remote) Classify(ctx context.Context, img image.Image) (Prediction, error) {
	body, err := json.Marshal(predictRequest{
		Instances: [][][][]float32{Preprocess(img)},
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to encode model input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("inference returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Prediction{}, fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(out.Predictions) == 0 || len(out.Predictions[0]) != len(r.labels) {
		return Prediction{}, fmt.Errorf("inference returned %d classes, want %d", len(out.Predictions), len(r.labels))
	}

	scores := out.Predictions[0]
	idx := floats.MaxIdx(scores)

	pred := Prediction{Category: r.labels[idx], Confidence: scores[idx]}
	r.log.WithFields(logrus.Fields{
		"category":   pred.Category,
		"confidence": pred.Confidence,
	}).Debug("classification completed")
	return pred, nil
}
