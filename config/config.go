package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, read once at startup.
type Config struct {
	Port                string
	DetectorBackend     string
	ConfidenceThreshold float64
	ModelPath           string
	ModelNamesPath      string
	InferenceURL        string
	GeminiAPIKey        string
	DownloadTimeout     time.Duration
	MaxImageSize        int64
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first; errors are ignored since the file may not exist.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8001"),
		DetectorBackend:     getEnv("DETECTOR_BACKEND", "yolo"),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.5),
		ModelPath:           getEnv("MODEL_PATH", "models/yolov8n.onnx"),
		ModelNamesPath:      getEnv("MODEL_NAMES_PATH", "models/coco.names"),
		InferenceURL:        getEnv("INFERENCE_URL", "http://localhost:5000/predict"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		DownloadTimeout:     time.Duration(getEnvInt("DOWNLOAD_TIMEOUT_SECONDS", 10)) * time.Second,
		MaxImageSize:        int64(getEnvInt("MAX_IMAGE_SIZE_BYTES", 10<<20)),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
