package detect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteDetector_Detect(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "0.5", r.FormValue("confidence"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(remoteResponse{Detections: []remoteDetection{
			{Label: "laptop", Confidence: 0.92, X: 10, Y: 20, Width: 100, Height: 80},
			{Label: "mouse", Confidence: 0.85},
		}})
	}))
	defer ts.Close()

	d := NewRemoteDetector(ts.URL)
	detections, err := d.Detect(context.Background(), []byte("fake-image"), 0.5)
	require.NoError(t, err)
	require.Len(t, detections, 2)

	assert.Equal(t, "laptop", detections[0].Label)
	assert.Equal(t, 0.92, detections[0].Confidence)
	assert.Equal(t, 10, detections[0].Box.Min.X)
	assert.Equal(t, 110, detections[0].Box.Max.X)
}

func TestRemoteDetector_FiltersBelowThreshold(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(remoteResponse{Detections: []remoteDetection{
			{Label: "laptop", Confidence: 0.92},
			{Label: "chair", Confidence: 0.3},
		}})
	}))
	defer ts.Close()

	d := NewRemoteDetector(ts.URL)
	detections, err := d.Detect(context.Background(), []byte("fake-image"), 0.5)
	require.NoError(t, err)
	require.Len(t, detections, 1)
	assert.Equal(t, "laptop", detections[0].Label)
}

func TestRemoteDetector_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	d := NewRemoteDetector(ts.URL)
	_, err := d.Detect(context.Background(), []byte("fake-image"), 0.5)
	assert.Error(t, err)
}

func TestRemoteDetector_CheckHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	d := NewRemoteDetector(ts.URL)
	assert.NoError(t, d.CheckHealth(context.Background()))

	down := NewRemoteDetector(ts.URL + "/missing")
	assert.Error(t, down.CheckHealth(context.Background()))
}
