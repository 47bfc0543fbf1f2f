package classifier

import (
	"context"
	"image"
)

// Static always returns the same prediction. Used in tests and as a stand-in
// when no inference endpoint is configured in development.
type Static struct {
	Result Prediction
}

// Classify returns the fixed prediction.
func (s Static) Classify(_ context.Context, _ image.Image) (Prediction, error) {
	return s.Result, nil
}
