package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/totemaster/vision-service/internal/analyze"
	"github.com/totemaster/vision-service/internal/inventory"
)

type healthResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Model   string `json:"model"`
	Status  string `json:"status"`
}

type analyzeRequest struct {
	PhotoURL string `json:"photoUrl"`
}

type analyzeMultipleRequest struct {
	PhotoURLs []string `json:"photoUrls"`
}

type analysisResponse struct {
	Items          []inventory.Item `json:"items"`
	PhotosAnalyzed int              `json:"photosAnalyzed"`
}

// handleHealth serves the GET / health descriptor.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Service: serviceName,
		Version: s.version,
		Model:   s.detector.Name(),
		Status:  "healthy",
	})
}

// handleAnalyze analyzes a single photo. Fetch or detect failure aborts the
// request; there is no partial result for one photo.
func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validatePhotoURL(req.PhotoURL); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	log.Info().Str("photoUrl", req.PhotoURL).Msg("analyzing photo")

	items, err := s.analyzer.AnalyzePhoto(c.Request().Context(), req.PhotoURL)
	if err != nil {
		var fetchErr *analyze.FetchError
		if errors.As(err, &fetchErr) {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to download image: "+fetchErr.Err.Error())
		}
		log.Error().Err(err).Str("photoUrl", req.PhotoURL).Msg("detection failed")
		return echo.NewHTTPError(http.StatusBadGateway, "detection failed")
	}

	return c.JSON(http.StatusOK, analysisResponse{
		Items:          items,
		PhotosAnalyzed: 1,
	})
}

// handleAnalyzeMultiple analyzes a set of photos with partial-failure
// tolerance. photosAnalyzed reports the requested count, not the number of
// photos that succeeded.
func (s *Server) handleAnalyzeMultiple(c echo.Context) error {
	var req analyzeMultipleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PhotoURLs == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "photoUrls is required")
	}
	for _, photoURL := range req.PhotoURLs {
		if err := validatePhotoURL(photoURL); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	log.Info().Int("photos", len(req.PhotoURLs)).Msg("analyzing photos")

	items := s.analyzer.AnalyzePhotos(c.Request().Context(), req.PhotoURLs)

	return c.JSON(http.StatusOK, analysisResponse{
		Items:          items,
		PhotosAnalyzed: len(req.PhotoURLs),
	})
}

func validatePhotoURL(photoURL string) error {
	if photoURL == "" {
		return errors.New("photoUrl is required")
	}
	u, err := url.ParseRequestURI(photoURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("photoUrl must be an http(s) URL")
	}
	return nil
}
