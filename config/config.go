// Package config loads runtime configuration from the environment,
// reading a .env file first when one is present.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings the normalizing commands need.
type Config struct {
	OpenAIKey   string
	OpenAIModel string
}

// Load reads configuration from .env and the process environment.
// The OpenAI API key is required; a missing key is a startup error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: os.Getenv("OPENAI_MODEL"),
	}
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set (add it to .env or the environment)")
	}
	return cfg, nil
}
