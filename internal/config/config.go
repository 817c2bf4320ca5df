package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string
	Model        string
	PhotoDir     string // where the directory camera reads captures from
	SaveDir      string // where judged photos are archived
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	model := os.Getenv("SNAPWAVE_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	photoDir := os.Getenv("SNAPWAVE_PHOTO_DIR")
	if photoDir == "" {
		photoDir = "photos"
	}
	saveDir := os.Getenv("SNAPWAVE_SAVE_DIR")
	if saveDir == "" {
		saveDir = ".captures"
	}

	return &Config{
		GeminiAPIKey: apiKey,
		Model:        model,
		PhotoDir:     photoDir,
		SaveDir:      saveDir,
	}, nil
}
