// Package analyze orchestrates the fetch → detect → build → consolidate
// pipeline behind the HTTP handlers.
package analyze

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/totemaster/vision-service/internal/detect"
	"github.com/totemaster/vision-service/internal/fetch"
	"github.com/totemaster/vision-service/internal/inventory"
	"github.com/totemaster/vision-service/internal/observability"
)

// Service runs the analysis pipeline. All state is request-scoped; the
// service itself only holds process-wide read-only collaborators.
type Service struct {
	fetcher   *fetch.ImageFetcher
	detector  detect.Detector
	threshold float64
	metrics   *observability.Metrics
}

// New creates an analysis service around the given detector.
func New(fetcher *fetch.ImageFetcher, detector detect.Detector, threshold float64, metrics *observability.Metrics) *Service {
	return &Service{
		fetcher:   fetcher,
		detector:  detector,
		threshold: threshold,
		metrics:   metrics,
	}
}

// AnalyzePhoto runs the full pipeline for a single photo. A fetch or detect
// failure aborts the whole request; there is no partial result.
func (s *Service) AnalyzePhoto(ctx context.Context, photoURL string) ([]inventory.Item, error) {
	items, err := s.analyzeOne(ctx, photoURL)
	if err != nil {
		return nil, err
	}
	return inventory.Consolidate(items), nil
}

// AnalyzePhotos processes photos sequentially and tolerates per-photo
// failures: a photo that can't be fetched or analyzed is logged and skipped.
// Items from all successful photos are pooled and consolidated once.
func (s *Service) AnalyzePhotos(ctx context.Context, photoURLs []string) []inventory.Item {
	all := make([]inventory.Item, 0)
	for _, photoURL := range photoURLs {
		items, err := s.analyzeOne(ctx, photoURL)
		if err != nil {
			log.Error().Err(err).Str("photoUrl", photoURL).Msg("failed to analyze photo, skipping")
			continue
		}
		all = append(all, items...)
	}
	return inventory.Consolidate(all)
}

func (s *Service) analyzeOne(ctx context.Context, photoURL string) ([]inventory.Item, error) {
	imageData, err := s.fetcher.Fetch(ctx, photoURL)
	if err != nil {
		s.metrics.FetchFailures.Inc()
		return nil, &FetchError{URL: photoURL, Err: err}
	}
	s.metrics.PhotosFetched.Inc()

	start := time.Now()
	detections, err := s.detector.Detect(ctx, imageData, s.threshold)
	if err != nil {
		return nil, &DetectError{URL: photoURL, Err: err}
	}
	s.metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	s.metrics.DetectionsTotal.Add(float64(len(detections)))

	log.Info().Str("photoUrl", photoURL).Int("detections", len(detections)).Msg("photo analyzed")

	items := make([]inventory.Item, 0, len(detections))
	for _, d := range detections {
		items = append(items, inventory.BuildItem(d.Label, d.Confidence, photoURL))
	}
	return items, nil
}
