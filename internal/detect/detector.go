package detect

import (
	"context"
	"image"
)

// Detection is one labeled box emitted by the model for a single image.
type Detection struct {
	Label      string
	Confidence float64
	Box        image.Rectangle
}

// Detector runs a pretrained object-detection model over an encoded image.
// Implementations are initialized once at process start and must be safe for
// concurrent calls.
type Detector interface {
	// Detect returns all detections scoring at or above threshold.
	Detect(ctx context.Context, imageData []byte, threshold float64) ([]Detection, error)

	// Name identifies the underlying model for the health descriptor.
	Name() string
}
