// Package classifier wraps the externally trained waste-classification model.
//
// The model itself lives behind an inference endpoint; this package owns the
// contract (decoded image in, label plus confidence out) and the fixed,
// deterministic preprocessing the model's input shape requires.
package classifier

import (
	"context"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Model input shape: 224x224 RGB, pixel values scaled to [0,1].
const (
	InputWidth  = 224
	InputHeight = 224
)

// Prediction is a single classification result. Confidence is the maximum
// class probability from one forward pass, in [0,1].
type Prediction struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Classifier turns a decoded image into a waste category prediction.
type Classifier interface {
	Classify(ctx context.Context, img image.Image) (Prediction, error)
}

// Preprocess resizes the image to the model's input shape and scales pixels
// by 1/255, returning an InputHeight x InputWidth x 3 tensor. The same bytes
// always produce the same tensor: the scaler and the traversal order are
// fixed.
func Preprocess(img image.Image) [][][]float32 {
	resized := image.NewRGBA(image.Rect(0, 0, InputWidth, InputHeight))
	xdraw.ApproxBiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	tensor := make([][][]float32, InputHeight)
	for y := 0; y < InputHeight; y++ {
		tensor[y] = make([][]float32, InputWidth)
		for x := 0; x < InputWidth; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			// RGBA returns 16-bit channels; scale to [0,1].
			tensor[y][x] = []float32{
				float32(r>>8) / 255.0,
				float32(g>>8) / 255.0,
				float32(b>>8) / 255.0,
			}
		}
	}
	return tensor
}
