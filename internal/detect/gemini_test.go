package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeminiDetections(t *testing.T) {
	detections, err := parseGeminiDetections(`[{"label": "laptop", "confidence": 0.92}, {"label": "mouse", "confidence": 0.85}]`)
	require.NoError(t, err)
	require.Len(t, detections, 2)
	assert.Equal(t, "laptop", detections[0].Label)
	assert.Equal(t, 0.92, detections[0].Confidence)
}

func TestParseGeminiDetections_MarkdownFences(t *testing.T) {
	text := "```json\n[{\"label\": \"cup\", \"confidence\": 0.7}]\n```"

	detections, err := parseGeminiDetections(text)
	require.NoError(t, err)
	require.Len(t, detections, 1)
	assert.Equal(t, "cup", detections[0].Label)
}

func TestParseGeminiDetections_EmptyArray(t *testing.T) {
	detections, err := parseGeminiDetections("[]")
	require.NoError(t, err)
	assert.Empty(t, detections)
}

func TestParseGeminiDetections_InvalidJSON(t *testing.T) {
	_, err := parseGeminiDetections("I can see a laptop in this image.")
	assert.Error(t, err)
}
