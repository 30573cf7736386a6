package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

var geminiPrompt = strings.TrimSpace(dedent.Dedent(`
	Identify every distinct physical object visible in this image.

	Respond in JSON format with an array of detections:
	[{"label": "laptop", "confidence": 0.92}, {"label": "cell phone", "confidence": 0.85}]

	- label: a short lowercase object name, one entry per visible object instance
	- confidence: how certain you are the object is present, between 0 and 1

	Respond ONLY with the JSON array, no markdown or other text.`))

// GeminiDetector uses Google's Gemini vision API as the detection capability.
// Unlike the YOLO backend it returns no bounding boxes.
type GeminiDetector struct {
	client *genai.Client
}

// NewGeminiDetector creates a Gemini-backed detector.
func NewGeminiDetector(ctx context.Context, apiKey string) (*GeminiDetector, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiDetector{client: client}, nil
}

func (g *GeminiDetector) Name() string { return geminiModel }

// Detect implements the Detector interface using Gemini.
func (g *GeminiDetector) Detect(ctx context.Context, imageData []byte, threshold float64) ([]Detection, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(geminiPrompt),
		{InlineData: &genai.Blob{Data: imageData, MIMEType: http.DetectContentType(imageData)}},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini")
	}

	text := result.Text()
	log.Debug().Str("response", text).Msg("gemini detection response")

	raw, err := parseGeminiDetections(text)
	if err != nil {
		return nil, err
	}

	detections := make([]Detection, 0, len(raw))
	for _, r := range raw {
		if r.Confidence < threshold {
			continue
		}
		detections = append(detections, Detection{Label: r.Label, Confidence: r.Confidence})
	}
	return detections, nil
}

type geminiDetection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

func parseGeminiDetections(text string) ([]geminiDetection, error) {
	// Clean up the response - remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var detections []geminiDetection
	if err := json.Unmarshal([]byte(text), &detections); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w (response: %s)", err, text)
	}
	return detections, nil
}
