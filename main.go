package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/totemaster/vision-service/config"
	"github.com/totemaster/vision-service/internal/analyze"
	"github.com/totemaster/vision-service/internal/detect"
	"github.com/totemaster/vision-service/internal/fetch"
	"github.com/totemaster/vision-service/internal/observability"
	"github.com/totemaster/vision-service/internal/server"
)

const version = "1.0.0"

const shutdownTimeout = 10 * time.Second

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	// Cancel on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The detection model is loaded once here and stays read-only for the
	// process lifetime; request handlers receive it as a dependency.
	detector, err := newDetector(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.DetectorBackend).Msg("failed to initialize detector")
	}
	if closer, ok := detector.(io.Closer); ok {
		defer closer.Close()
	}
	log.Info().Str("backend", cfg.DetectorBackend).Str("model", detector.Name()).Msg("detector initialized")

	metrics := observability.NewMetrics()
	fetcher := fetch.NewImageFetcher().
		WithTimeout(cfg.DownloadTimeout).
		WithMaxSize(cfg.MaxImageSize)
	analyzer := analyze.New(fetcher, detector, cfg.ConfidenceThreshold, metrics)
	srv := server.New(analyzer, detector, metrics, version)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("shutdown with error")
	} else {
		log.Info().Msg("shutdown complete")
	}
}

// newDetector builds the configured detection backend.
func newDetector(ctx context.Context, cfg *config.Config) (detect.Detector, error) {
	switch cfg.DetectorBackend {
	case "yolo":
		return detect.NewYOLODetector(cfg.ModelPath, cfg.ModelNamesPath)
	case "remote":
		d := detect.NewRemoteDetector(cfg.InferenceURL)
		if err := d.CheckHealth(ctx); err != nil {
			log.Warn().Err(err).Str("url", cfg.InferenceURL).Msg("inference service not reachable")
		}
		return d, nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is required for the gemini backend")
		}
		return detect.NewGeminiDetector(ctx, cfg.GeminiAPIKey)
	default:
		return nil, fmt.Errorf("unknown detector backend: %s", cfg.DetectorBackend)
	}
}
