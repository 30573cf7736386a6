//go:build !gocv
// +build !gocv

package detect

import (
	"context"
	"errors"
)

// YOLODetector placeholder for builds without OpenCV.
type YOLODetector struct{}

// NewYOLODetector fails unless the binary was built with -tags gocv.
func NewYOLODetector(modelPath, namesPath string) (*YOLODetector, error) {
	_ = modelPath
	_ = namesPath
	return nil, errors.New("yolo backend requires a build with -tags gocv")
}

func (d *YOLODetector) Name() string { return "yolo" }

func (d *YOLODetector) Close() error { return nil }

func (d *YOLODetector) Detect(ctx context.Context, imageData []byte, threshold float64) ([]Detection, error) {
	_ = ctx
	_ = imageData
	_ = threshold
	return nil, errors.New("gocv build tag is not enabled")
}
