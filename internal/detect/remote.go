package detect

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const remoteRequestTimeout = 30 * time.Second

// RemoteDetector delegates inference to an external model-serving sidecar
// that accepts a multipart image upload and returns JSON detections.
type RemoteDetector struct {
	httpClient   *resty.Client
	inferenceURL string
}

// NewRemoteDetector creates a detector backed by the given inference URL.
func NewRemoteDetector(inferenceURL string) *RemoteDetector {
	return &RemoteDetector{
		httpClient:   resty.New().SetTimeout(remoteRequestTimeout),
		inferenceURL: inferenceURL,
	}
}

func (d *RemoteDetector) Name() string { return "remote-inference" }

type remoteDetection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

type remoteResponse struct {
	Detections []remoteDetection `json:"detections"`
}

// Detect posts the image to the inference service and maps its response.
func (d *RemoteDetector) Detect(ctx context.Context, imageData []byte, threshold float64) ([]Detection, error) {
	result := &remoteResponse{}

	res, err := d.httpClient.NewRequest().
		SetContext(ctx).
		SetFileReader("file", "image.jpg", bytes.NewReader(imageData)).
		SetFormData(map[string]string{
			"confidence": strconv.FormatFloat(threshold, 'f', -1, 64),
		}).
		SetResult(result).
		Post(d.inferenceURL)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("inference failed: %s (status: %d)", d.inferenceURL, res.StatusCode())
	}

	detections := make([]Detection, 0, len(result.Detections))
	for _, r := range result.Detections {
		if r.Confidence < threshold {
			continue
		}
		detections = append(detections, Detection{
			Label:      r.Label,
			Confidence: r.Confidence,
			Box:        image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height),
		})
	}
	return detections, nil
}

// CheckHealth pings the inference service's health endpoint.
func (d *RemoteDetector) CheckHealth(ctx context.Context) error {
	res, err := d.httpClient.NewRequest().
		SetContext(ctx).
		Get(d.inferenceURL + "/health")
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("inference service unhealthy: status %d", res.StatusCode())
	}
	return nil
}
