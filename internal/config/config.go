package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Edge detector selection values.
const (
	EdgeDetectorGradient = "gradient"
	EdgeDetectorCanny    = "canny"
)

// Width search selection values.
const (
	WidthSearchBrute  = "brute"
	WidthSearchKDTree = "kdtree"
)

// Config holds the measurement pipeline settings.
type Config struct {
	PxToMM       float64
	MaxWorkers   int
	EdgeDetector string
	WidthSearch  string
	LogLevel     string
}

// LoadFromEnv reads configuration from the environment, after loading an
// optional .env file. Missing keys get defaults; present keys are validated.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		PxToMM:       parseFloatOrDefault("PX_TO_MM", 0.077),
		MaxWorkers:   parseIntOrDefault("MAX_WORKERS", 0),
		EdgeDetector: getEnvOrDefault("EDGE_DETECTOR", EdgeDetectorGradient),
		WidthSearch:  getEnvOrDefault("WIDTH_SEARCH", WidthSearchBrute),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.PxToMM <= 0 || math.IsNaN(cfg.PxToMM) || math.IsInf(cfg.PxToMM, 0) {
		return nil, fmt.Errorf("PX_TO_MM must be > 0 (got %v)", cfg.PxToMM)
	}
	if cfg.MaxWorkers < 0 {
		return nil, fmt.Errorf("MAX_WORKERS must be >= 0 (got %d)", cfg.MaxWorkers)
	}
	switch cfg.EdgeDetector {
	case EdgeDetectorGradient, EdgeDetectorCanny:
	default:
		return nil, fmt.Errorf("invalid EDGE_DETECTOR: %q", cfg.EdgeDetector)
	}
	switch cfg.WidthSearch {
	case WidthSearchBrute, WidthSearchKDTree:
	default:
		return nil, fmt.Errorf("invalid WIDTH_SEARCH: %q", cfg.WidthSearch)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
