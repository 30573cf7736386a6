package analyze

import "fmt"

// FetchError wraps a failure to download or decode a photo.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DetectError wraps an inference failure.
type DetectError struct {
	URL string
	Err error
}

func (e *DetectError) Error() string {
	return fmt.Sprintf("detect objects in %s: %v", e.URL, e.Err)
}

func (e *DetectError) Unwrap() error { return e.Err }
