// Package server exposes the detection pipeline over HTTP.
package server

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/totemaster/vision-service/internal/analyze"
	"github.com/totemaster/vision-service/internal/detect"
	"github.com/totemaster/vision-service/internal/observability"
)

const serviceName = "object-detection-service"

// Server wraps the Echo instance and its collaborators.
type Server struct {
	echo     *echo.Echo
	analyzer *analyze.Service
	detector detect.Detector
	metrics  *observability.Metrics
	version  string
}

// New configures routes and middleware. The detector is injected once at
// startup and treated as read-only for the process lifetime.
func New(analyzer *analyze.Service, detector detect.Detector, metrics *observability.Metrics, version string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		analyzer: analyzer,
		detector: detector,
		metrics:  metrics,
		version:  version,
	}

	e.Use(middleware.Recover())
	// The upstream frontend calls this service cross-origin.
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			s.metrics.RequestsTotal.WithLabelValues(c.Path(), strconv.Itoa(v.Status)).Inc()
			return nil
		},
	}))

	e.GET("/", s.handleHealth)
	e.POST("/analyze", s.handleAnalyze)
	e.POST("/analyze-multiple", s.handleAnalyzeMultiple)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	return s
}

// Start begins listening on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
