//go:build gocv
// +build gocv

package detect

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"gocv.io/x/gocv"
)

const (
	yoloInputSize    = 640
	yoloNMSThreshold = 0.45
)

// YOLODetector runs a YOLOv8 ONNX model in-process through OpenCV's DNN
// module. The network is loaded once and kept for the process lifetime.
type YOLODetector struct {
	// OpenCV DNN nets are not safe for concurrent forward passes.
	mu      sync.Mutex
	net     gocv.Net
	classes []string
	name    string
}

// NewYOLODetector loads the ONNX model and its class vocabulary.
func NewYOLODetector(modelPath, namesPath string) (*YOLODetector, error) {
	classes, err := LoadClassNames(namesPath)
	if err != nil {
		return nil, err
	}

	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("load model %s: empty network", modelPath)
	}
	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	name := strings.TrimSuffix(filepath.Base(modelPath), filepath.Ext(modelPath))
	return &YOLODetector{net: net, classes: classes, name: name}, nil
}

// Name returns the model file's base name, e.g. "yolov8n".
func (d *YOLODetector) Name() string { return d.name }

// Close releases the loaded network.
func (d *YOLODetector) Close() error { return d.net.Close() }

// Detect decodes the image, runs one forward pass and returns detections
// scoring at or above threshold, after non-max suppression.
func (d *YOLODetector) Detect(ctx context.Context, imageData []byte, threshold float64) ([]Detection, error) {
	_ = ctx
	img, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	defer img.Close()
	if img.Empty() {
		return nil, errors.New("decode image: empty image")
	}

	blob := gocv.BlobFromImage(img, 1.0/255.0, image.Pt(yoloInputSize, yoloInputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.mu.Lock()
	d.net.SetInput(blob, "")
	out := d.net.Forward("")
	d.mu.Unlock()
	defer out.Close()

	return d.decodeOutput(out, img.Cols(), img.Rows(), threshold)
}

// decodeOutput parses the raw [1, 4+numClasses, numAnchors] output tensor.
// Each anchor column holds cx, cy, w, h followed by per-class scores.
func (d *YOLODetector) decodeOutput(out gocv.Mat, imgW, imgH int, threshold float64) ([]Detection, error) {
	sizes := out.Size()
	if len(sizes) != 3 || sizes[1] < 5 {
		return nil, fmt.Errorf("unexpected model output shape %v", sizes)
	}
	attrs := sizes[1]
	anchors := sizes[2]

	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read model output: %w", err)
	}

	scaleX := float64(imgW) / yoloInputSize
	scaleY := float64(imgH) / yoloInputSize

	var boxes []image.Rectangle
	var scores []float32
	var classIDs []int

	for j := 0; j < anchors; j++ {
		bestClass := -1
		var bestScore float32
		for k := 4; k < attrs; k++ {
			if s := data[k*anchors+j]; s > bestScore {
				bestScore = s
				bestClass = k - 4
			}
		}
		if bestClass < 0 || float64(bestScore) < threshold {
			continue
		}

		cx := float64(data[0*anchors+j]) * scaleX
		cy := float64(data[1*anchors+j]) * scaleY
		w := float64(data[2*anchors+j]) * scaleX
		h := float64(data[3*anchors+j]) * scaleY

		boxes = append(boxes, image.Rect(
			int(cx-w/2), int(cy-h/2),
			int(cx+w/2), int(cy+h/2),
		))
		scores = append(scores, bestScore)
		classIDs = append(classIDs, bestClass)
	}

	indices := gocv.NMSBoxes(boxes, scores, float32(threshold), yoloNMSThreshold)

	detections := make([]Detection, 0, len(indices))
	for _, idx := range indices {
		label := fmt.Sprintf("class_%d", classIDs[idx])
		if classIDs[idx] < len(d.classes) {
			label = d.classes[classIDs[idx]]
		}
		detections = append(detections, Detection{
			Label:      label,
			Confidence: float64(scores[idx]),
			Box:        boxes[idx],
		})
	}
	return detections, nil
}
