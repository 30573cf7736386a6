package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	// DefaultTimeout bounds a single photo download.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxImageSize is the default maximum image size (10MB).
	DefaultMaxImageSize = 10 * 1024 * 1024
)

var (
	// ErrNotImage means the response body was not an image.
	ErrNotImage = errors.New("response is not an image")
	// ErrTooLarge means the image exceeded the configured size limit.
	ErrTooLarge = errors.New("image exceeds size limit")
)

// ImageFetcher downloads and validates photos with a bounded timeout and an
// enforced size limit.
type ImageFetcher struct {
	client  *http.Client
	timeout time.Duration
	maxSize int64
}

// NewImageFetcher creates an ImageFetcher with default settings.
func NewImageFetcher() *ImageFetcher {
	return &ImageFetcher{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		timeout: DefaultTimeout,
		maxSize: DefaultMaxImageSize,
	}
}

// WithTimeout sets a custom timeout for downloads.
func (f *ImageFetcher) WithTimeout(timeout time.Duration) *ImageFetcher {
	f.timeout = timeout
	f.client.Timeout = timeout
	return f
}

// WithMaxSize sets a custom maximum image size.
func (f *ImageFetcher) WithMaxSize(maxSize int64) *ImageFetcher {
	f.maxSize = maxSize
	return f
}

// Fetch downloads the photo at imageURL and verifies the payload decodes as
// an image. It respects context cancellation and enforces the size limit
// even when Content-Length is missing or wrong.
func (f *ImageFetcher) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type %s", ErrNotImage, contentType)
	}

	if resp.ContentLength > f.maxSize {
		return nil, fmt.Errorf("%w: %d bytes over limit of %d", ErrTooLarge, resp.ContentLength, f.maxSize)
	}

	limitedReader := io.LimitReader(resp.Body, f.maxSize+1)
	data, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, f.maxSize)
	}

	// An undecodable payload counts as a fetch failure, the same as a
	// network error.
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	return data, nil
}
